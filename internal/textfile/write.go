package textfile

import (
	"fmt"
	"os"
)

// Overwrite truncates path and writes payload in place.
//
// There is no temp file and no rename: a crash mid-write can leave the file
// partially written. When create is false the file must already exist.
func Overwrite(path string, payload []byte, create bool) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}
	flags := os.O_WRONLY | os.O_TRUNC
	if create {
		flags |= os.O_CREATE
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		return writeErr
	}
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}

// Lines splits data on newlines, drops a trailing carriage return from each
// line, and reports the 1-based line number alongside each non-empty line.
func Lines(data []byte, fn func(number int, line string) error) error {
	start := 0
	number := 0
	for i := 0; i <= len(data); i++ {
		if i < len(data) && data[i] != '\n' {
			continue
		}
		number++
		line := string(data[start:i])
		start = i + 1
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if line == "" {
			continue
		}
		if err := fn(number, line); err != nil {
			return err
		}
	}
	return nil
}
