// Package sheet implements the record store contract on a directory of CSV
// files, one <table>.csv per table with a header row. It replaces the shared
// spreadsheet the plan used to live in and reads files exported from it.
package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safetyplan/actionplan/internal/domain"
)

var tableColumns = map[string][]string{
	domain.TableActionItems:     domain.ActionItemColumns,
	domain.TableBlockingActions: domain.BlockingActionColumns,
}

var dateColumns = map[string]bool{
	domain.ColInitialDeadline: true,
	domain.ColCompletionDate:  true,
}

var managedColumns = map[string]bool{
	domain.ColCreatedAt: true,
	domain.ColUpdatedAt: true,
}

// Store is safe for concurrent use; every operation holds the store lock.
type Store struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// New opens dir, creating it and any missing table files.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sheet: create dir: %w", err)
	}

	s := &Store{dir: dir, now: time.Now}
	for table, cols := range tableColumns {
		path := s.path(table)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("sheet: stat %s: %w", path, err)
		}
		if err := s.writeTable(table, cols, nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type lockedCtxKey struct{}

// lock acquires the store lock unless ctx already runs inside RunInTx.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(lockedCtxKey{}) == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// RunInTx runs fn with exclusive access to the store. When fn returns an
// error or panics, every table file is restored to its prior content.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	unlock := s.lock(ctx)
	defer unlock()

	snapshot := make(map[string][]byte, len(tableColumns))
	for table := range tableColumns {
		data, err := os.ReadFile(s.path(table))
		if err != nil {
			return fmt.Errorf("sheet: snapshot %s: %w", table, err)
		}
		snapshot[table] = data
	}

	restore := func() error {
		for table, data := range snapshot {
			if err := writeFileAtomic(s.path(table), data); err != nil {
				return fmt.Errorf("sheet: restore %s: %w", table, err)
			}
		}
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			_ = restore()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, lockedCtxKey{}, s)); err != nil {
		if rbErr := restore(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	return nil
}

// ReadAll returns every data row of table in file order.
func (s *Store) ReadAll(ctx context.Context, table string) ([]domain.Record, error) {
	if _, err := lookupTable(table); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := s.lock(ctx)
	defer unlock()

	_, records, err := s.readTable(table)
	return records, err
}

// Get returns the row with the given id.
func (s *Store) Get(ctx context.Context, table, id string) (domain.Record, error) {
	if _, err := lookupTable(table); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%s: %w", table, domain.NewValidationError("id", "required"))
	}

	unlock := s.lock(ctx)
	defer unlock()

	_, records, err := s.readTable(table)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Get(domain.ColID) == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
}

// Insert appends a row and returns its id. When rec carries no id a new UUID
// is assigned.
func (s *Store) Insert(ctx context.Context, table string, rec domain.Record) (string, error) {
	cols, err := lookupTable(table)
	if err != nil {
		return "", err
	}

	id := strings.TrimSpace(rec.Get(domain.ColID))
	if id == "" {
		id = uuid.NewString()
	}

	row := domain.Record{domain.ColID: id}
	for name, raw := range rec {
		if name == domain.ColID {
			continue
		}
		v, err := encodeValue(table, cols, name, raw)
		if err != nil {
			return "", err
		}
		row[name] = v
	}
	stamp := s.now().UTC().Format(time.RFC3339Nano)
	if slices.Contains(cols, domain.ColCreatedAt) {
		row[domain.ColCreatedAt] = stamp
	}
	if slices.Contains(cols, domain.ColUpdatedAt) {
		row[domain.ColUpdatedAt] = stamp
	}

	unlock := s.lock(ctx)
	defer unlock()

	header, records, err := s.readTable(table)
	if err != nil {
		return "", err
	}
	for _, r := range records {
		if r.Get(domain.ColID) == id {
			return "", fmt.Errorf("%s %s: %w", table, id, domain.ErrAlreadyExists)
		}
	}

	if err := s.writeTable(table, header, append(records, row)); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateFields sets the given columns on the row with id and bumps
// updated_at when the table has one.
func (s *Store) UpdateFields(ctx context.Context, table, id string, fields domain.Record) error {
	cols, err := lookupTable(table)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", table, domain.NewValidationError("id", "required"))
	}
	if len(fields) == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.NewValidationError("fields", "nothing to update"))
	}

	updates := make(domain.Record, len(fields)+1)
	for name, raw := range fields {
		if name == domain.ColID {
			return fmt.Errorf("%s %s: %w", table, id, domain.NewValidationError(name, "is immutable"))
		}
		v, err := encodeValue(table, cols, name, raw)
		if err != nil {
			return err
		}
		updates[name] = v
	}
	if slices.Contains(cols, domain.ColUpdatedAt) {
		updates[domain.ColUpdatedAt] = s.now().UTC().Format(time.RFC3339Nano)
	}

	unlock := s.lock(ctx)
	defer unlock()

	header, records, err := s.readTable(table)
	if err != nil {
		return err
	}

	found := false
	for _, r := range records {
		if r.Get(domain.ColID) != id {
			continue
		}
		for k, v := range updates {
			r[k] = v
		}
		found = true
		break
	}
	if !found {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}

	return s.writeTable(table, header, records)
}

// ---------------------------------------------------------------------------
// File access
// ---------------------------------------------------------------------------

// Ping reports whether every table file is still readable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for table := range tableColumns {
		f, err := os.Open(s.path(table))
		if err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
		f.Close()
	}
	return nil
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// readTable parses the table file. Columns unknown to the schema are kept so
// that rewrites preserve them; known columns missing from the header are
// appended.
func (s *Store) readTable(table string) ([]string, []domain.Record, error) {
	f, err := os.Open(s.path(table))
	if err != nil {
		return nil, nil, fmt.Errorf("sheet: open %s: %w", table, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return tableColumns[table], nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("sheet: read %s header: %w", table, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	for _, c := range tableColumns[table] {
		if !slices.Contains(header, c) {
			header = append(header, c)
		}
	}

	var records []domain.Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("sheet: read %s: %w", table, err)
		}
		if isBlankRow(fields) {
			continue
		}
		rec := make(domain.Record, len(header))
		for i, name := range header {
			if i < len(fields) {
				rec[name] = fields[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	return header, records, nil
}

func (s *Store) writeTable(table string, header []string, records []domain.Record) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("sheet: encode %s: %w", table, err)
	}
	row := make([]string, len(header))
	for _, rec := range records {
		for i, name := range header {
			row[i] = rec.Get(name)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("sheet: encode %s: %w", table, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("sheet: encode %s: %w", table, err)
	}

	if err := writeFileAtomic(s.path(table), buf.Bytes()); err != nil {
		return fmt.Errorf("sheet: write %s: %w", table, err)
	}
	return nil
}

// writeFileAtomic replaces path via a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func lookupTable(table string) ([]string, error) {
	cols, ok := tableColumns[table]
	if !ok {
		return nil, fmt.Errorf("table %q: %w", table, domain.ErrValidation)
	}
	return cols, nil
}

func encodeValue(table string, cols []string, name, raw string) (string, error) {
	if !slices.Contains(cols, name) {
		return "", fmt.Errorf("%s: %w", table, domain.NewValidationError(name, "unknown column"))
	}
	if managedColumns[name] {
		return "", fmt.Errorf("%s: %w", table, domain.NewValidationError(name, "is managed by the store"))
	}

	raw = strings.TrimSpace(raw)
	if dateColumns[name] && raw != "" {
		d, ok := domain.ParseDeadline(raw)
		if !ok {
			return "", fmt.Errorf("%s: %w", table, domain.NewValidationError(name, "invalid date"))
		}
		return domain.FormatDeadline(d), nil
	}
	return raw, nil
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
