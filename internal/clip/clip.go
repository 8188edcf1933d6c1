// Package clip provides a unified interface to the system clipboard across
// platforms. Build constraints select the appropriate implementation:
//
//	clip_darwin.go   — macOS via golang.design/x/clipboard + cgo changeCount
//	clip_linux.go    — Linux via golang.design/x/clipboard, derived token
//	clip_windows.go  — Windows via golang.design/x/clipboard, derived token
//
// When golang.design/x/clipboard cannot initialise (no display, no cgo),
// New falls back to the atotto/clipboard command-line backend, and finally
// to a headless no-op device.
package clip

// Device is the clipboard capability the history engine consumes: a change
// token plus text read/write. Implementations must guarantee that Version
// returns a new value whenever the clipboard content has changed since the
// last observation, including changes made through WriteText.
type Device interface {
	// Name returns a human-readable name for the device.
	Name() string

	// Version returns the current change token. The value is opaque beyond
	// comparability: callers only ever compare it against a previously
	// observed value.
	Version() uint64

	// ReadText returns the current clipboard text. ok is false when the
	// clipboard is empty or holds a non-text payload.
	ReadText() (text string, ok bool)

	// WriteText replaces the clipboard content with text. A subsequent
	// Version call reflects the change.
	WriteText(text string) error

	// Close releases any resources held by the device.
	Close()
}
