package studio

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// OpenDir reveals path in the platform file manager. It validates that the
// path names an existing directory before handing it to the opener and does
// not wait for the spawned process.
func OpenDir(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return errors.New("directory path cannot be empty")
	}

	info, err := os.Stat(trimmed)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q is not a directory or does not exist", trimmed)
	}

	var command *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		command = exec.Command("explorer", trimmed)
	case "darwin":
		command = exec.Command("open", trimmed)
	default:
		command = exec.Command("xdg-open", trimmed)
	}

	if err := command.Start(); err != nil {
		return fmt.Errorf("failed to open directory %q: %w", trimmed, err)
	}
	return nil
}
