// Package emit writes rendered routes to their destination.
package emit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Stdout is the path that selects standard output.
const Stdout = "-"

var ErrRoutesFileMissing = errors.New("routes file does not exist")

var stdout io.Writer = os.Stdout

// Append adds text to the end of an existing routes file. The file is never
// created: a missing file is reported with ErrRoutesFileMissing and left
// untouched.
func Append(path string, text []byte) error {
	if path == Stdout {
		return writeStdout(text)
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrRoutesFileMissing, path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat routes file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("routes file %s is a directory", path)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open routes file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(text); err != nil {
		return fmt.Errorf("failed to append routes: %w", err)
	}
	return file.Close()
}

// Write replaces the file at path with text, creating parent directories
// as needed.
func Write(path string, text []byte) error {
	if path == Stdout {
		return writeStdout(text)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeStdout(text []byte) error {
	if _, err := stdout.Write(text); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}
