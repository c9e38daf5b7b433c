package engine

import (
	"fmt"
	"io"
	"os"
)

// WriteOutput replaces the file at path with text, written to a temporary
// file and renamed into place.
func WriteOutput(path, text string) error {
	w, err := os.Create(path + "~")
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer w.Close()
	defer os.Remove(path + "~")
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close output file %q: %w", path, err)
	}
	return os.Rename(path+"~", path)
}
