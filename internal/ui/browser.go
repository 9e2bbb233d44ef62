package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openInBrowser hands url to the platform's default opener
func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	// reap the opener without blocking the UI
	go func() { _ = cmd.Wait() }()
	return nil
}
