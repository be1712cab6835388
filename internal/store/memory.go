package store

// Memory is an in-memory byte store for tests and ephemeral runs.
type Memory struct {
	bytes map[int]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{bytes: map[int]byte{}}
}

// ReadByte returns the byte at addr; unwritten addresses read as zero.
func (m *Memory) ReadByte(addr int) (byte, error) {
	return m.bytes[addr], nil
}

// WriteByte stores one byte at addr.
func (m *Memory) WriteByte(addr int, value byte) error {
	m.bytes[addr] = value
	return nil
}
