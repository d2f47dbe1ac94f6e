// Package mmfile loads property-bag files into memory, mapping them read-only
// where the platform supports it.
package mmfile

import "sync"

// Mapping holds the bytes of an opened file. Bytes stays valid until Close.
type Mapping struct {
	data    []byte
	mapped  bool
	once    sync.Once
	release func([]byte) error
	err     error
}

// Bytes returns the file contents.
func (m *Mapping) Bytes() []byte { return m.data }

// Mapped reports whether the contents are backed by a memory mapping rather
// than a heap copy.
func (m *Mapping) Mapped() bool { return m.mapped }

// Close releases the mapping. Calling it more than once is a no-op.
func (m *Mapping) Close() error {
	m.once.Do(func() {
		if m.release != nil && len(m.data) > 0 {
			m.err = m.release(m.data)
		}
		m.data = nil
	})
	return m.err
}
