// Package browser opens external links in the user's browser.
package browser

import (
	"fmt"
	"io"
	"net/url"

	pkgbrowser "github.com/pkg/browser"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(rawURL string) error
}

// System opens URLs with the platform browser launcher.
type System struct{}

// NewSystem returns an Opener that launches the platform browser.
// The launcher's own output is discarded so it cannot draw over the TUI.
func NewSystem() System {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return System{}
}

// Open implements Opener.
func (System) Open(rawURL string) error {
	if err := validate(rawURL); err != nil {
		return err
	}
	if err := pkgbrowser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

func validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("invalid url %q: unsupported scheme", rawURL)
	}
	return nil
}
