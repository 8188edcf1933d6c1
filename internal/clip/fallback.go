package clip

import (
	"log/slog"

	xclip "github.com/atotto/clipboard"
)

// commandDevice shells out to the platform clipboard utilities (xclip/xsel,
// wl-clipboard, pbcopy/pbpaste) via atotto/clipboard. It needs no cgo or
// display initialisation, which makes it the fallback when
// golang.design/x/clipboard cannot start. The version token is derived from
// content comparison.
type commandDevice struct {
	derivedVersion
}

// newFallback returns the external-command device, or the headless no-op
// device when no clipboard utility is available at all.
func newFallback() Device {
	if xclip.Unsupported {
		slog.Warn("no clipboard utility available, running headless")
		return headlessDevice{}
	}
	slog.Info("using external clipboard utility")
	return &commandDevice{}
}

func (d *commandDevice) Name() string { return "external clipboard utility" }

func (d *commandDevice) Version() uint64 {
	text, err := xclip.ReadAll()
	if err != nil {
		// An unreadable clipboard (empty selection, utility hiccup) is
		// observed as empty content, not an error.
		text = ""
	}
	return d.observe([]byte(text))
}

func (d *commandDevice) ReadText() (string, bool) {
	text, err := xclip.ReadAll()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}

func (d *commandDevice) WriteText(text string) error {
	return xclip.WriteAll(text)
}

func (d *commandDevice) Close() {}

// headlessDevice is a no-op clipboard device for environments without any
// clipboard access (containers, CI). It never reports changes and silently
// discards writes.
type headlessDevice struct{}

func (headlessDevice) Name() string             { return "headless (no-op)" }
func (headlessDevice) Version() uint64          { return 0 }
func (headlessDevice) ReadText() (string, bool) { return "", false }
func (headlessDevice) WriteText(string) error   { return nil }
func (headlessDevice) Close()                   {}
