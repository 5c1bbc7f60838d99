package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/dbx"
)

// Dialect selects the placeholder syntax of the SQL repository.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var placeholder = regexp.MustCompile(`\$(\d+)`)

// SQLRepository stores records in the "records" table. Queries are
// written with $N placeholders; SQLite gets ?N.
type SQLRepository struct {
	db      dbx.DBTX
	dialect Dialect
}

var _ Repository = (*SQLRepository)(nil)

func NewSQLRepository(db dbx.DBTX, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) q(query string) string {
	if r.dialect == DialectSQLite {
		return placeholder.ReplaceAllString(query, "?$1")
	}
	return query
}

func scanRecord(kind string, row interface{ Scan(...any) error }) (Record, error) {
	var (
		id   int64
		body string
	)
	if err := row.Scan(&id, &body); err != nil {
		return Record{}, err
	}
	fields := Fields{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return Record{}, fmt.Errorf("decode record %d: %w", id, err)
	}
	return Record{ID: id, Kind: kind, Fields: fields}, nil
}

func encode(fields Fields) (string, error) {
	b, err := json.Marshal(Clean(fields))
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(b), nil
}

func (r *SQLRepository) FindAll(ctx context.Context, kind string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, r.q(`SELECT id, body FROM records WHERE kind = $1 ORDER BY id`), kind)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(kind, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, kind string, id int64) (Record, error) {
	row := r.db.QueryRowContext(ctx, r.q(`SELECT id, body FROM records WHERE kind = $1 AND id = $2`), kind, id)
	rec, err := scanRecord(kind, row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, notFound(kind, id, common.ErrorNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("error performing sql request: %w", err)
	}
	return rec, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, kind, name string) (Record, error) {
	row := r.db.QueryRowContext(ctx, r.q(`SELECT id, body FROM records WHERE kind = $1 AND name = $2 ORDER BY id LIMIT 1`), kind, name)
	rec, err := scanRecord(kind, row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%s %q: %w", kind, name, common.ErrorNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("error performing sql request: %w", err)
	}
	return rec, nil
}

func (r *SQLRepository) Create(ctx context.Context, kind string, fields Fields) (Record, error) {
	body, err := encode(fields)
	if err != nil {
		return Record{}, err
	}
	row := r.db.QueryRowContext(ctx,
		r.q(`INSERT INTO records (kind, name, body) VALUES ($1, $2, $3) RETURNING id, body`),
		kind, nameOf(fields), body)
	rec, err := scanRecord(kind, row)
	if err != nil {
		return Record{}, fmt.Errorf("error performing sql request: %w", err)
	}
	return rec, nil
}

func (r *SQLRepository) Update(ctx context.Context, kind string, id int64, fields Fields) (Record, error) {
	body, err := encode(fields)
	if err != nil {
		return Record{}, err
	}
	row := r.db.QueryRowContext(ctx,
		r.q(`UPDATE records SET name = $1, body = $2 WHERE kind = $3 AND id = $4 RETURNING id, body`),
		nameOf(fields), body, kind, id)
	rec, err := scanRecord(kind, row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, notFound(kind, id, common.ErrorNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("error performing sql request: %w", err)
	}
	return rec, nil
}

func (r *SQLRepository) Delete(ctx context.Context, kind string, id int64) error {
	res, err := r.db.ExecContext(ctx, r.q(`DELETE FROM records WHERE kind = $1 AND id = $2`), kind, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id, common.ErrorNotFound)
	}
	return nil
}
