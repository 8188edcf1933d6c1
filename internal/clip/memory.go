package clip

import "sync"

// Memory is an in-process Device backed by a plain variable. Tests use it
// to simulate external clipboard changes without a display server.
type Memory struct {
	mu      sync.Mutex
	text    string
	hasText bool
	version uint64
}

// NewMemory returns an empty in-memory device.
func NewMemory() *Memory {
	return &Memory{}
}

// SetText simulates an external program writing text to the clipboard.
func (m *Memory) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.hasText = true
	m.version++
}

// SetNonText simulates an external program placing a non-text payload on
// the clipboard: the version changes but no text is readable.
func (m *Memory) SetNonText() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = ""
	m.hasText = false
	m.version++
}

func (m *Memory) Name() string { return "in-memory" }

func (m *Memory) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

func (m *Memory) ReadText() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasText {
		return "", false
	}
	return m.text, true
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.hasText = true
	m.version++
	return nil
}

func (m *Memory) Close() {}
