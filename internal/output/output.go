// Package output delivers the rendered server configuration to its
// destination: stdout or a file on disk.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdout is the path alias selecting the standard output stream.
const Stdout = "-"

const fileMode = 0o644

// Write sends data to stdout when path is empty or [Stdout], and otherwise
// replaces the file at path atomically: data goes to a temporary file in the
// same directory which is then renamed over path. Parent directories are
// created as needed.
func Write(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == Stdout {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("error writing config to stdout: %w", err)
		}
		return nil
	}

	return writeFile(path, data)
}

func writeFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temp config file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing temp config file: %w", err)
	}
	if err = tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error setting config file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp config file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing config file: %w", err)
	}

	return nil
}
