package misc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var errNoFileName = errors.New("no filename supplied")

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errNoFileName
	}
	contents, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", fileName, err)
	}
	return contents, nil
}

// WriteFile creates or truncates fileName, making any missing parent
// directories, and reports how many bytes reached it.
func WriteFile(fileName string, contents []byte) (written int, err error) {
	if fileName == "" {
		return 0, errNoFileName
	}
	if dir := filepath.Dir(fileName); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("unable to make directory for %s: %w", fileName, err)
		}
	}

	file, err := os.Create(fileName)
	if err != nil {
		return 0, fmt.Errorf("unable to create %s: %w", fileName, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("unable to close %s: %w", fileName, closeErr)
		}
	}()

	written, err = file.Write(contents)
	if err != nil {
		return written, fmt.Errorf("unable to write %s: %w", fileName, err)
	}
	return written, nil
}
