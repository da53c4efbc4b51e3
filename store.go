package measure

import (
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// storeTimeLayout is fixed-width (no trailing-zero trimming) so the
// stored strings sort chronologically under ORDER BY.
const storeTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is a named measurement persisted in a Store.
type Record struct {
	ID        string
	TypeName  string
	Name      string
	Value     Value
	CreatedAt time.Time
}

// Store keeps named measurements in a SQLite database. Values are
// stored in the same JSON shape MarshalJSON emits, so rows stay
// human-readable and round-trip exactly like the wire format.
type Store struct {
	db     *sql.DB
	types  map[string]*Type
	mutex  sync.Mutex
	logger *slog.Logger
}

// OpenStore opens (creating if needed) a SQLite database at path and
// registers the given types for decoding. Types without a name are
// rejected.
func OpenStore(path string, types ...*Type) (*Store, error) {
	for _, t := range types {
		if t.Name() == "" {
			return nil, newError(ErrCodeStore, "store types must be named")
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapError(ErrCodeStore, "opening store", err)
	}

	s := &Store{
		db:     db,
		types:  make(map[string]*Type, len(types)),
		logger: slog.Default().With("component", "measure.store"),
	}
	for _, t := range types {
		s.types[t.Name()] = t
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS measurements (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			doc TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_measurements_type ON measurements (type);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return wrapError(ErrCodeStore, "initializing schema", err)
		}
	}
	return nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a named measurement and returns its generated ID. The
// value's type must be registered with the store.
func (s *Store) Save(name string, v Value) (string, error) {
	if v.Type() == nil {
		return "", newError(ErrCodeInvalidValue, "value was not created by a measurement type")
	}
	typeName := v.Type().Name()
	if _, ok := s.types[typeName]; !ok {
		return "", newErrorWithContext(ErrCodeNotFound, "type is not registered with the store",
			map[string]any{"type": typeName})
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := uuid.New().String()
	createdAt := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO measurements (id, type, name, doc, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, typeName, name, v, createdAt.Format(storeTimeLayout))
	if err != nil {
		return "", wrapError(ErrCodeStore, "saving measurement", err)
	}
	s.logger.Debug("measurement saved", "id", id, "type", typeName, "name", name)
	return id, nil
}

// Load returns the record with the given ID.
func (s *Store) Load(id string) (Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	row := s.db.QueryRow(
		`SELECT id, type, name, doc, created_at FROM measurements WHERE id = ?`, id)
	return s.scanRecord(row)
}

// List returns every record of the named type, oldest first.
func (s *Store) List(typeName string) ([]Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rows, err := s.db.Query(
		`SELECT id, type, name, doc, created_at FROM measurements WHERE type = ? ORDER BY created_at`,
		typeName)
	if err != nil {
		return nil, wrapError(ErrCodeStore, "listing measurements", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := s.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(ErrCodeStore, "listing measurements", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanRecord(row rowScanner) (Record, error) {
	var record Record
	var doc, createdAt string
	if err := row.Scan(&record.ID, &record.TypeName, &record.Name, &doc, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, newError(ErrCodeNotFound, "measurement not found")
		}
		return Record{}, wrapError(ErrCodeStore, "reading measurement", err)
	}

	t, ok := s.types[record.TypeName]
	if !ok {
		return Record{}, newErrorWithContext(ErrCodeNotFound, "type is not registered with the store",
			map[string]any{"type": record.TypeName})
	}
	v, err := t.ScanValue(doc)
	if err != nil {
		return Record{}, err
	}
	record.Value = v

	ts, err := time.Parse(storeTimeLayout, createdAt)
	if err != nil {
		return Record{}, wrapError(ErrCodeStore, "reading measurement timestamp", err)
	}
	record.CreatedAt = ts
	return record, nil
}
