package prompt

import (
	"bytes"
	"io"
)

// mockDriver implements Driver for tests. It replays a scripted key
// sequence, records everything written, and tracks raw-mode transitions so
// teardown behavior can be asserted. The size is mutable mid-script to
// exercise width re-query on resize.
type mockDriver struct {
	keys     []Key
	pos      int
	out      bytes.Buffer
	rawMode  bool
	raws     int // times SetRaw was called
	width    int
	height   int
	readErr  error // injected ReadKey failure, returned after the script
	writeErr error // injected Write failure
	closed   bool
}

func newMockDriver(keys ...Key) *mockDriver {
	return &mockDriver{keys: keys, width: 80, height: 24}
}

func (m *mockDriver) SetRaw() error {
	m.rawMode = true
	m.raws++
	return nil
}

func (m *mockDriver) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockDriver) ReadKey() (Key, error) {
	if m.pos >= len(m.keys) {
		if m.readErr != nil {
			return Key{}, m.readErr
		}
		return Key{}, io.EOF
	}
	k := m.keys[m.pos]
	m.pos++
	return k, nil
}

func (m *mockDriver) Size() (int, int, error) {
	return m.width, m.height, nil
}

func (m *mockDriver) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.out.Write(p)
}

func (m *mockDriver) Flush() error { return nil }

func (m *mockDriver) Close() error {
	m.closed = true
	return nil
}

// written returns everything flushed to the driver so far.
func (m *mockDriver) written() string {
	return m.out.String()
}
