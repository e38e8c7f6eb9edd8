// Package journal is the ATM event journal: one timestamped line per notable
// event, mirrored to the console and to a per-run log file. Write-only
// telemetry; nothing parses the format back.
package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/juju/errors"
)

const (
	linePrefixFormat = "2006-01-02 | 15:04:05 --> "
	fileNameFormat   = "log-2006.01.02-15.04.05.txt"
)

type Journal struct {
	mu  sync.Mutex
	w   io.Writer
	f   *os.File
	now func() time.Time
}

// New writes to the given sinks only. Used by tests and as the base for Open.
func New(ws ...io.Writer) *Journal {
	return &Journal{w: io.MultiWriter(ws...), now: time.Now}
}

// Open creates the per-run log file `log-YYYY.MM.DD-HH.MM.SS.txt` in dir and
// mirrors every line to stdout when console is set.
func Open(dir string, console bool) (*Journal, error) {
	name := filepath.Join(dir, time.Now().Format(fileNameFormat))
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Annotatef(err, "journal file %s", name)
	}
	ws := []io.Writer{f}
	if console {
		ws = append(ws, os.Stdout)
	}
	j := New(ws...)
	j.f = f
	return j, nil
}

// Printf appends one line prefixed with the locale timestamp.
func (j *Journal) Printf(format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.w, j.now().Format(linePrefixFormat)+format+"\n", args...)
}

// Raw appends one line without the timestamp prefix. Used for the indented
// continuation lines of multi-line entries.
func (j *Journal) Raw(format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.w, format+"\n", args...)
}

func (j *Journal) Banner() {
	sep := "================================================================================"
	j.Raw(sep)
	j.Raw("==================================ATM Software==================================")
	j.Raw(sep)
}

func (j *Journal) Close() error {
	if j == nil || j.f == nil {
		return nil
	}
	return j.f.Close()
}

// XXX_testSetClock pins the timestamp source. Tests only.
func (j *Journal) XXX_testSetClock(now func() time.Time) { j.now = now }
