package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Open command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Opener abstracts how an item URL is opened. A deployment may inject a
// host bridge; when none is present the app hands the URL to the default
// browser in a fresh, isolated context.
type Opener interface {
	OpenURL(rawURL string) error
}

// BridgeOpener forwards open requests to a host-provided function.
type BridgeOpener struct {
	Open func(rawURL string) error
}

// OpenURL sends the URL over the host bridge.
func (b BridgeOpener) OpenURL(rawURL string) error {
	if b.Open == nil {
		return fmt.Errorf("host bridge has no open function")
	}
	return b.Open(rawURL)
}

// AppOpener opens URLs through the Fyne application.
type AppOpener struct {
	App fyne.App
}

// OpenURL validates the URL and hands it to the default browser.
func (a AppOpener) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web URL %q", rawURL)
	}
	return a.App.OpenURL(u)
}

// SystemOpener shells out to the platform open command. Used by tools that
// run without a Fyne app context.
type SystemOpener struct{}

// OpenURL launches the OS URL handler.
func (SystemOpener) OpenURL(rawURL string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, rawURL).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, rawURL).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// NewOpener returns the host bridge when one was injected, the app opener
// when a Fyne app is available, and the OS command fallback otherwise.
func NewOpener(bridge func(rawURL string) error, app fyne.App) Opener {
	if bridge != nil {
		return BridgeOpener{Open: bridge}
	}
	if app != nil {
		return AppOpener{App: app}
	}
	return SystemOpener{}
}
