package execute

import (
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// SystemClipboard is the real OS clipboard.
type SystemClipboard struct{}

// Read returns the current clipboard text.
func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the clipboard text.
func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// SystemOpener opens URLs and paths with the platform launcher.
type SystemOpener struct{}

// OpenURL opens a URL in the default browser, or a named browser when
// one is given.
func (SystemOpener) OpenURL(rawURL, browser string) error {
	if browser != "" {
		if runtime.GOOS == "darwin" {
			return exec.Command("open", "-a", browser, rawURL).Start()
		}
		return exec.Command(browser, rawURL).Start()
	}
	return openDefault(rawURL)
}

// OpenPath reveals a filesystem path.
func (SystemOpener) OpenPath(path string) error {
	return openDefault(path)
}

func openDefault(target string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target).Start()
	default:
		return exec.Command("xdg-open", target).Start()
	}
}
