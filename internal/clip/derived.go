package clip

import (
	"bytes"
	"sync"
)

// derivedVersion synthesizes a change token for platforms without a native
// pasteboard revision counter (X11, Wayland, Windows without a listener
// window). Each observation compares the read bytes against the previous
// read and bumps a counter when they differ, so the counter changes exactly
// when content changes between observations.
type derivedVersion struct {
	mu      sync.Mutex
	last    []byte
	counter uint64
}

func (d *derivedVersion) observe(b []byte) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !bytes.Equal(b, d.last) {
		d.last = append(d.last[:0:0], b...)
		d.counter++
	}
	return d.counter
}
