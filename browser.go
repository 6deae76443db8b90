package svgpdf

import (
	"fmt"
	"os/exec"

	"github.com/go-rod/rod/lib/launcher"
)

// chromeNames lists executable names probed when looking for an installed
// Chrome or Chromium.
var chromeNames = []string{
	"chromium-browser", "chromium", "google-chrome",
	"google-chrome-stable", "chrome",
}

// findChrome returns the path of an installed Chrome/Chromium executable,
// or "" when none is in PATH.
func findChrome() string {
	for _, name := range chromeNames {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("svgpdf: downloading browser: %w", err)
	}
	return path, nil
}
