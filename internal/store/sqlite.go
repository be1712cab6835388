package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLite is a byte store backed by a single-table SQLite database,
// standing in for the device EEPROM.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the NVRAM database and applies migrations.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS nvram (
			addr INTEGER PRIMARY KEY,
			value INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReadByte returns the byte at addr; unwritten addresses read as zero.
func (s *SQLite) ReadByte(addr int) (byte, error) {
	var value int
	err := s.db.QueryRow(`SELECT value FROM nvram WHERE addr = ?`, addr).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return byte(value), nil
}

// WriteByte stores one byte at addr.
func (s *SQLite) WriteByte(addr int, value byte) error {
	_, err := s.db.Exec(
		`INSERT INTO nvram (addr, value) VALUES (?, ?)
		 ON CONFLICT(addr) DO UPDATE SET value = excluded.value`,
		addr, int(value),
	)
	return err
}
