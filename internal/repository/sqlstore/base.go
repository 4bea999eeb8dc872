package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

// BaseRepository provides common functionality for all repositories.
// Reads go through query, which always carries the active-record predicate
// for every table it touches.
type BaseRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB) BaseRepository {
	return BaseRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// WithTx executes a function within a transaction
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// query accumulates FROM/JOIN/WHERE parts with ? placeholders.
type query struct {
	from  string
	joins []string
	conds []string
	args  []interface{}
}

// active starts a query over the active rows of table.
func active(table, alias string) *query {
	return &query{
		from:  table + " " + alias,
		conds: []string{alias + ".is_deleted = FALSE"},
	}
}

// join adds an inner join restricted to active rows of the joined table.
func (q *query) join(table, alias, on string) *query {
	q.joins = append(q.joins, fmt.Sprintf("JOIN %s %s ON %s", table, alias, on))
	q.conds = append(q.conds, alias+".is_deleted = FALSE")
	return q
}

func (q *query) where(cond string, args ...interface{}) *query {
	q.conds = append(q.conds, cond)
	q.args = append(q.args, args...)
	return q
}

func (q *query) sql(selectExpr string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(selectExpr)
	b.WriteString(" FROM ")
	b.WriteString(q.from)
	for _, j := range q.joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(q.conds, " AND "))
	return b.String()
}

func (r *BaseRepository) get(ctx context.Context, dest interface{}, q *query) error {
	stmt := r.db.Rebind(q.sql("*"))
	if err := r.db.GetContext(ctx, dest, stmt, q.args...); err != nil {
		return translate(err)
	}
	return nil
}

func (r *BaseRepository) getByID(ctx context.Context, dest interface{}, table string, id uuid.UUID) error {
	return r.get(ctx, dest, active(table, "t").where("t.id = ?", id))
}

// list selects rows ordered by orderBy; a zero page returns every row.
func (r *BaseRepository) list(ctx context.Context, dest interface{}, q *query, orderBy string, page model.Page) error {
	stmt := q.sql("*")
	args := q.args
	if orderBy != "" {
		stmt += " ORDER BY " + orderBy
	}
	if page.Limit > 0 {
		stmt += " LIMIT ? OFFSET ?"
		args = append(append([]interface{}{}, args...), page.Limit, page.Skip)
	}
	return translate(r.db.SelectContext(ctx, dest, r.db.Rebind(stmt), args...))
}

// scalar runs an aggregate select into dest. selectArgs bind placeholders
// inside selectExpr and precede the WHERE arguments.
func (r *BaseRepository) scalar(ctx context.Context, dest interface{}, q *query, selectExpr string, selectArgs ...interface{}) error {
	stmt := r.db.Rebind(q.sql(selectExpr))
	args := append(append([]interface{}{}, selectArgs...), q.args...)
	return translate(r.db.GetContext(ctx, dest, stmt, args...))
}

// grouped runs selectExpr grouped and ordered by groupBy.
func (r *BaseRepository) grouped(ctx context.Context, dest interface{}, q *query, selectExpr, groupBy string) error {
	stmt := r.db.Rebind(q.sql(selectExpr) + " GROUP BY " + groupBy + " ORDER BY " + groupBy)
	return translate(r.db.SelectContext(ctx, dest, stmt, q.args...))
}

func (r *BaseRepository) count(ctx context.Context, q *query) (int, error) {
	var n int
	if err := r.scalar(ctx, &n, q, "COUNT(*)"); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *BaseRepository) exists(ctx context.Context, q *query) (bool, error) {
	n, err := r.count(ctx, q)
	return n > 0, err
}

// insert writes a row from the db tags of src.
func (r *BaseRepository) insert(ctx context.Context, table string, columns []string, src interface{}) error {
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		table, strings.Join(columns, ", "), strings.Join(columns, ", :"))
	_, err := r.db.NamedExecContext(ctx, stmt, src)
	return translate(err)
}

// update rewrites the given columns of an active row.
func (r *BaseRepository) update(ctx context.Context, table string, columns []string, src interface{}) error {
	sets := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		sets = append(sets, c+" = :"+c)
	}
	sets = append(sets, "updated_at = :updated_at")
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = :id AND is_deleted = FALSE", table, strings.Join(sets, ", "))

	res, err := r.db.NamedExecContext(ctx, stmt, src)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res.RowsAffected())
}

// softDelete flags an active row as deleted and stamps deleted_at.
func (r *BaseRepository) softDelete(ctx context.Context, table string, id uuid.UUID) error {
	now := r.now()
	stmt := r.db.Rebind(fmt.Sprintf(
		"UPDATE %s SET is_deleted = TRUE, deleted_at = ?, updated_at = ? WHERE id = ? AND is_deleted = FALSE", table))
	res, err := r.db.ExecContext(ctx, stmt, now, now, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res.RowsAffected())
}

func requireAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func baseColumns() []string {
	return []string{"id", "created_at", "updated_at", "is_deleted", "deleted_at"}
}

func withBase(columns ...string) []string {
	return append(baseColumns(), columns...)
}
