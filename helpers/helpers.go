package helpers

import (
	"errors"
	"time"
)

func FoldErrors(errs []error) (err error) {
	for _, e := range errs {
		err = errors.Join(err, e)
	}
	return err
}

func ConfigDefaultInt(in int, valueIfZero int) int {
	if in == 0 {
		return valueIfZero
	}
	return in
}

func ConfigDefaultStr(in string, valueIfBlank string) string {
	if in == "" {
		return valueIfBlank
	}
	return in
}

func IntMillisecondDefault(in int, def time.Duration) time.Duration {
	if in == 0 {
		return def
	}
	return time.Duration(in) * time.Millisecond
}
