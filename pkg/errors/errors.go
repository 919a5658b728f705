package errors

import (
	"fmt"
	"path"
	"runtime"
)

// WrapPathErr annotates err with the file:line of the caller so that
// wrapped errors read as a call path when logged.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return err
	}

	return fmt.Errorf("%s:%d: %w", path.Base(file), line, err)
}
