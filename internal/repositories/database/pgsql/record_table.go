package pgsql

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// tableSchema describes how one record type maps onto its table.
type tableSchema[T any] struct {
	table  string
	entity string
	// selectColumns is the projection returned by every read.
	selectColumns []string
	insertColumns []string
	insertValues  func(rec *T) []any
	// updateColumns are written by Update; the id is bound after them.
	updateColumns []string
	updateValues  func(rec *T) []any
	recordID      func(rec *T) string
	searchColumns []string
	// filters maps a logical filter key to the column it matches exactly.
	filters map[string]string
	// ranges maps a logical range key to a date column.
	ranges map[string]string
	// flags maps a named predicate to its SQL.
	flags   map[string]string
	orderBy string
}

// recordTable is the generic pgx implementation of RecordRepositoryFacade.
type recordTable[T any] struct {
	BaseRepository
	schema tableSchema[T]
}

func newRecordTable[T any](pool *pgxpool.Pool, schema tableSchema[T]) *recordTable[T] {
	return &recordTable[T]{BaseRepository: BaseRepository{Pool: pool}, schema: schema}
}

var _ portsrepo.RecordRepositoryFacade[domain.Expense] = (*recordTable[domain.Expense])(nil)

func (r *recordTable[T]) columns() string {
	return strings.Join(r.schema.selectColumns, ", ")
}

// FindByID retrieves a row by its id.
func (r *recordTable[T]) FindByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.columns(), r.schema.table)
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, translateError(err, "find "+r.schema.entity)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("%s %s", r.schema.entity, id))
	}
	return rec, nil
}

// List returns one page of rows matching q and the total number of matches.
func (r *recordTable[T]) List(ctx context.Context, q domain.ListQuery) ([]T, int, error) {
	q = q.Normalized()
	where, err := r.where(q)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, r.schema.table, where.sql())
	if err := r.Pool.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, translateError(err, "count "+r.schema.entity)
	}

	limitArg := where.bind(q.Limit)
	offsetArg := where.bind(q.Offset)
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s LIMIT %s OFFSET %s`,
		r.columns(), r.schema.table, where.sql(), r.schema.orderBy, limitArg, offsetArg)
	items, err := r.collect(ctx, query, where.args)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll returns every row matching q's filters in the default order.
func (r *recordTable[T]) ListAll(ctx context.Context, q domain.ListQuery) ([]T, error) {
	where, err := r.where(q)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s`, r.columns(), r.schema.table, where.sql(), r.schema.orderBy)
	return r.collect(ctx, query, where.args)
}

func (r *recordTable[T]) collect(ctx context.Context, query string, args []any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list "+r.schema.entity)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, translateError(err, "scan "+r.schema.entity)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Insert persists a new row and returns it as stored.
func (r *recordTable[T]) Insert(ctx context.Context, rec T) (*T, error) {
	placeholders := make([]string, len(r.schema.insertColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.schema.table,
		strings.Join(r.schema.insertColumns, ", "),
		strings.Join(placeholders, ", "),
		r.columns())
	return r.one(ctx, query, r.schema.insertValues(&rec), "insert "+r.schema.entity)
}

// Update overwrites the mutable columns of an existing row.
func (r *recordTable[T]) Update(ctx context.Context, rec T) (*T, error) {
	query, args := r.updateStatement(&rec)
	return r.one(ctx, query, args, fmt.Sprintf("%s %s", r.schema.entity, r.schema.recordID(&rec)))
}

func (r *recordTable[T]) updateStatement(rec *T) (string, []any) {
	sets := make([]string, len(r.schema.updateColumns))
	for i, col := range r.schema.updateColumns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args := append(r.schema.updateValues(rec), r.schema.recordID(rec))
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		r.schema.table, strings.Join(sets, ", "), len(args), r.columns())
	return query, args
}

// Delete removes a row; zero affected rows is reported as not found.
func (r *recordTable[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.schema.table)
	tag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return translateError(err, "delete "+r.schema.entity)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, r.schema.entity, id)
	}
	return nil
}

// one runs a statement returning a single row of T.
func (r *recordTable[T]) one(ctx context.Context, query string, args []any, what string) (*T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, what)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, translateError(err, what)
	}
	return rec, nil
}

// where resolves the logical keys of q against the schema's allow-lists.
func (r *recordTable[T]) where(q domain.ListQuery) (*whereBuilder, error) {
	w := &whereBuilder{}

	for _, key := range sortedKeys(q.Filters) {
		col, ok := r.schema.filters[key]
		if !ok {
			return nil, unknownFilter(r.schema.entity, key)
		}
		w.add(fmt.Sprintf("%s = %s", col, w.bind(q.Filters[key])))
	}
	for _, key := range sortedKeys(q.AnyOf) {
		col, ok := r.schema.filters[key]
		if !ok {
			return nil, unknownFilter(r.schema.entity, key)
		}
		w.add(fmt.Sprintf("%s = ANY(%s)", col, w.bind(q.AnyOf[key])))
	}
	for _, key := range sortedKeys(q.Ranges) {
		col, ok := r.schema.ranges[key]
		if !ok {
			return nil, unknownFilter(r.schema.entity, key)
		}
		rng := q.Ranges[key]
		if rng.From != nil {
			w.add(fmt.Sprintf("%s >= %s", col, w.bind(*rng.From)))
		}
		if rng.To != nil {
			w.add(fmt.Sprintf("%s <= %s", col, w.bind(*rng.To)))
		}
	}
	for _, flag := range q.Flags {
		pred, ok := r.schema.flags[flag]
		if !ok {
			return nil, unknownFilter(r.schema.entity, flag)
		}
		w.add("(" + pred + ")")
	}
	if q.Search != "" && len(r.schema.searchColumns) > 0 {
		arg := w.bind("%" + escapeLike(q.Search) + "%")
		ors := make([]string, len(r.schema.searchColumns))
		for i, col := range r.schema.searchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE %s", col, arg)
		}
		w.add("(" + strings.Join(ors, " OR ") + ")")
	}
	return w, nil
}

func unknownFilter(entity, key string) error {
	return fmt.Errorf("%w: unsupported filter %q for %s", apperrors.ErrValidation, key, entity)
}

// whereBuilder accumulates AND-ed predicates and their positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) bind(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
