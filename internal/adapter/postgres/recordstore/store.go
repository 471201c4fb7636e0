// Package recordstore implements the record store contract on PostgreSQL.
// Rows are exchanged as domain.Record values; only the tables and columns
// declared in the schema are reachable.
package recordstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/safetyplan/actionplan/internal/adapter/postgres"
	"github.com/safetyplan/actionplan/internal/domain"
)

// Store reads and writes records in PostgreSQL. Queries run inside the
// transaction carried by ctx when there is one.
type Store struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new record store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ReadAll returns every row of table ordered by creation time.
func (s *Store) ReadAll(ctx context.Context, table string) ([]domain.Record, error) {
	t, err := lookupTable(table)
	if err != nil {
		return nil, err
	}

	query, args, err := s.selectBuilder(t).
		OrderBy(domain.ColCreatedAt, domain.ColID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s build select: %w", t.entity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, s.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, t.entity, "")
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		rec, err := scanRecord(t, rows)
		if err != nil {
			return nil, postgres.MapError(err, t.entity, "")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, t.entity, "")
	}

	return records, nil
}

// Get returns the row with the given id.
func (s *Store) Get(ctx context.Context, table, id string) (domain.Record, error) {
	t, err := lookupTable(table)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%s: %w", t.entity, domain.NewValidationError("id", "required"))
	}

	query, args, err := s.selectBuilder(t).
		Where(sq.Eq{domain.ColID: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s build select: %w", t.entity, err)
	}

	row := postgres.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...)
	rec, err := scanRecord(t, row)
	if err != nil {
		return nil, postgres.MapError(err, t.entity, id)
	}
	return rec, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert creates a row and returns its id. When rec carries no id a new UUID
// is assigned.
func (s *Store) Insert(ctx context.Context, table string, rec domain.Record) (string, error) {
	t, err := lookupTable(table)
	if err != nil {
		return "", err
	}

	id := strings.TrimSpace(rec.Get(domain.ColID))
	if id == "" {
		id = uuid.NewString()
	}

	values := map[string]any{domain.ColID: id}
	for name, raw := range rec {
		if name == domain.ColID {
			continue
		}
		c, err := writableColumn(t, name)
		if err != nil {
			return "", err
		}
		v, err := encodeValue(c, raw)
		if err != nil {
			return "", fmt.Errorf("%s %s: %w", t.entity, id, err)
		}
		values[name] = v
	}

	query, args, err := s.sb.Insert(t.name).
		SetMap(values).
		Suffix("RETURNING " + domain.ColID).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s build insert: %w", t.entity, err)
	}

	var created string
	if err := postgres.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...).Scan(&created); err != nil {
		return "", postgres.MapError(err, t.entity, id)
	}
	return created, nil
}

// UpdateFields sets the given columns on the row with id. Tables that track
// updated_at have it bumped.
func (s *Store) UpdateFields(ctx context.Context, table, id string, fields domain.Record) error {
	t, err := lookupTable(table)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", t.entity, domain.NewValidationError("id", "required"))
	}
	if len(fields) == 0 {
		return fmt.Errorf("%s %s: %w", t.entity, id, domain.NewValidationError("fields", "nothing to update"))
	}

	clauses := make(map[string]any, len(fields)+1)
	for name, raw := range fields {
		if name == domain.ColID {
			return fmt.Errorf("%s %s: %w", t.entity, id, domain.NewValidationError(name, "is immutable"))
		}
		c, err := writableColumn(t, name)
		if err != nil {
			return err
		}
		v, err := encodeValue(c, raw)
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.entity, id, err)
		}
		clauses[name] = v
	}
	if t.touch {
		clauses[domain.ColUpdatedAt] = sq.Expr("now()")
	}

	query, args, err := s.sb.Update(t.name).
		SetMap(clauses).
		Where(sq.Eq{domain.ColID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s build update: %w", t.entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, t.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", t.entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) selectBuilder(t tableSchema) sq.SelectBuilder {
	exprs := make([]string, len(t.columns))
	for i, c := range t.columns {
		exprs[i] = c.selectExpr()
	}
	return s.sb.Select(exprs...).From(t.name)
}

func scanRecord(t tableSchema, row rowScanner) (domain.Record, error) {
	values := make([]pgtype.Text, len(t.columns))
	dest := make([]any, len(t.columns))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rec := make(domain.Record, len(t.columns))
	for i, c := range t.columns {
		if values[i].Valid {
			rec[c.name] = values[i].String
		} else {
			rec[c.name] = ""
		}
	}
	return rec, nil
}

func lookupTable(name string) (tableSchema, error) {
	t, ok := tables[name]
	if !ok {
		return tableSchema{}, fmt.Errorf("table %q: %w", name, domain.ErrValidation)
	}
	return t, nil
}

func writableColumn(t tableSchema, name string) (column, error) {
	c, ok := t.column(name)
	if !ok {
		return column{}, fmt.Errorf("%s: %w", t.entity, domain.NewValidationError(name, "unknown column"))
	}
	if c.managed {
		return column{}, fmt.Errorf("%s: %w", t.entity, domain.NewValidationError(name, "is managed by the store"))
	}
	return c, nil
}

// encodeValue converts a record value into a query argument. Empty values of
// nullable columns become NULL.
func encodeValue(c column, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch c.kind {
	case kindDate:
		if raw == "" {
			if !c.nullable {
				return nil, domain.NewValidationError(c.name, "required")
			}
			return pgtype.Date{}, nil
		}
		d, ok := domain.ParseDeadline(raw)
		if !ok {
			return nil, domain.NewValidationError(c.name, "invalid date")
		}
		return pgtype.Date{Time: d.In(time.UTC), Valid: true}, nil
	default:
		if raw == "" && c.nullable {
			return pgtype.Text{}, nil
		}
		return raw, nil
	}
}
