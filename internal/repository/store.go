package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *domain.StoreError
	if errors.As(err, &se) {
		return err
	}
	return domain.NewStoreError(op, err)
}

// rowErr maps a single-row read failure: no rows is a NotFoundError, anything else a StoreError.
func rowErr(op, entity string, id uuid.UUID, err error) error {
	if isNoRows(err) {
		return domain.NewNotFoundError(entity, id.String())
	}
	return storeErr(op, err)
}

// setClause accumulates "col = $n" pairs for a partial UPDATE.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) set(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

// setExpr binds v into expr, where %s is replaced by the placeholder.
func (s *setClause) setExpr(col, expr string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, col+" = "+fmt.Sprintf(expr, fmt.Sprintf("$%d", len(s.args))))
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

func (s *setClause) update(table string, id uuid.UUID) (string, []any) {
	args := append(append([]any(nil), s.args...), id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(s.cols, ", "), len(args))
	return q, args
}

func stringSlice(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func collect[T any](ctx context.Context, db database.Querier, op string, scan func(database.Row) (T, error), q string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return out, nil
}

func execUpdate(ctx context.Context, db database.Querier, table, entity string, id uuid.UUID, s *setClause) error {
	if s.empty() {
		return nil
	}
	q, args := s.update(table, id)
	n, err := db.Exec(ctx, q, args...)
	if err != nil {
		return storeErr(table+".update", err)
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id.String())
	}
	return nil
}

func execDelete(ctx context.Context, db database.Querier, table, entity string, id uuid.UUID) error {
	n, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return storeErr(table+".delete", err)
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id.String())
	}
	return nil
}

func count(ctx context.Context, db database.Querier, table string, featuredOnly bool) (int, error) {
	q := `SELECT COUNT(*) FROM ` + table
	if featuredOnly {
		q += ` WHERE featured`
	}
	var n int
	if err := db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, storeErr(table+".count", err)
	}
	return n, nil
}
