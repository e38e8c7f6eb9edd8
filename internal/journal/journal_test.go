package journal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintfPrefix(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	j := New(&buf)
	j.XXX_testSetClock(func() time.Time {
		return time.Date(2024, 5, 1, 12, 34, 56, 0, time.UTC)
	})

	j.Printf("ATM is now powered on")
	assert.Equal(t, "2024-05-01 | 12:34:56 --> ATM is now powered on\n", buf.String())
}

func TestRawHasNoPrefix(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	j := New(&buf)

	j.Raw("\t\t\t  Full Name: %s", "Ionescu Maria")
	assert.Equal(t, "\t\t\t  Full Name: Ionescu Maria\n", buf.String())
}

func TestBanner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	j := New(&buf)

	j.Banner()
	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "ATM Software")
	for _, l := range lines {
		assert.Len(t, l, 80)
	}
}

func TestOpenFileNaming(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	j, err := Open(dir, false)
	require.NoError(t, err)
	j.Printf("ATM is now powered on")
	require.NoError(t, j.Close())

	names, err := filepath.Glob(filepath.Join(dir, "log-*.txt"))
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Regexp(t, `log-\d{4}\.\d{2}\.\d{2}-\d{2}\.\d{2}\.\d{2}\.txt$`, names[0])

	b, err := os.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), "--> ATM is now powered on\n")
}

func TestNilJournal(t *testing.T) {
	t.Parallel()
	var j *Journal
	j.Printf("ignored")
	j.Raw("ignored")
	require.NoError(t, j.Close())
}
