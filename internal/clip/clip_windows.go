//go:build windows

package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type windowsDevice struct {
	derivedVersion
}

// New returns the Windows clipboard device. GetClipboardSequenceNumber
// would be the native token, but golang.design/x/clipboard does not expose
// it, so the token is derived from content comparison like on Linux.
func New() Device {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed, trying fallback", "err", err)
		return newFallback()
	}
	return &windowsDevice{}
}

func (d *windowsDevice) Name() string { return "Windows clipboard (derived token)" }

func (d *windowsDevice) Version() uint64 {
	return d.observe(clipboard.Read(clipboard.FmtText))
}

func (d *windowsDevice) ReadText() (string, bool) {
	b := clipboard.Read(clipboard.FmtText)
	if b == nil {
		return "", false
	}
	return string(b), true
}

func (d *windowsDevice) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (d *windowsDevice) Close() {}
