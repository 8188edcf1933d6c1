//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger clipstash_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type darwinDevice struct{}

// New returns the macOS clipboard device. NSPasteboard's changeCount is the
// native version token: it increments exactly once per clipboard mutation,
// from any process.
func New() Device {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed, trying fallback", "err", err)
		return newFallback()
	}
	return &darwinDevice{}
}

func (d *darwinDevice) Name() string { return "macOS NSPasteboard" }

func (d *darwinDevice) Version() uint64 {
	return uint64(C.clipstash_changeCount())
}

func (d *darwinDevice) ReadText() (string, bool) {
	b := clipboard.Read(clipboard.FmtText)
	if b == nil {
		return "", false
	}
	return string(b), true
}

func (d *darwinDevice) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (d *darwinDevice) Close() {}
