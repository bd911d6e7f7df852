// Package postgres implements the store contract on a real database. Rows
// live as one jsonb document per record next to the engine-owned id and
// timestamp columns, so the semantics stay identical to the local engine:
// equality filters and ordering compare the text form of values, and the
// composition_types join is attached the same way.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/PatriceWisniewsky/MotionCut/config"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

type Client struct {
	DB *sql.DB
}

func NewClient(cfg *config.DatabaseConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return &Client{DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// engine-owned columns stored outside the jsonb document.
func isEngineColumn(col string) bool {
	return col == "id" || col == "created_at" || col == "updated_at"
}

// tables the executor is allowed to touch; table names are interpolated
// into SQL and must come from this closed set.
var knownTables = map[string]string{
	"composition_types": "composition_types",
	"blueprints":        "blueprints",
	"video_history":     "video_history",
	"users":             "users",
}

func (c *Client) Execute(ctx context.Context, q store.Query) ([]store.Row, error) {
	table, ok := knownTables[q.Table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", q.Table)
	}

	switch q.Verb {
	case store.VerbInsert:
		return c.execInsert(ctx, table, q)
	case store.VerbDelete:
		return c.execDelete(ctx, table, q)
	case store.VerbUpdate:
		return c.execUpdate(ctx, table, q)
	default:
		return c.execSelect(ctx, table, q)
	}
}

func (c *Client) execInsert(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	inserted := make([]store.Row, 0, len(q.InsertRows))

	for _, staged := range q.InsertRows {
		doc := staged.Clone()
		delete(doc, "id")
		delete(doc, "created_at")
		delete(doc, "updated_at")

		data, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}

		row := doc.Clone()
		row["id"] = uuid.NewString()
		row["created_at"] = now
		row["updated_at"] = now

		query := fmt.Sprintf(
			`INSERT INTO %s (id, data, created_at, updated_at) VALUES ($1, $2, $3, $4)`, table)
		if _, err := c.DB.ExecContext(ctx, query, row["id"], data, now, now); err != nil {
			return nil, err
		}
		inserted = append(inserted, row)
	}

	if q.Want && len(inserted) > 0 {
		return inserted[:1], nil
	}
	return inserted, nil
}

func (c *Client) execDelete(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	where, args := buildWhere(q.Filters, 1)
	res, err := c.DB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s%s`, table, where), args...)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, store.ErrNotFound
	}
	return nil, nil
}

func (c *Client) execUpdate(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	patch, err := json.Marshal(q.Patch)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	where, args := buildWhere(q.Filters, 3)
	query := fmt.Sprintf(`UPDATE %s SET data = data || $1::jsonb, updated_at = $2%s`, table, where)
	res, err := c.DB.ExecContext(ctx, query, append([]interface{}{patch, now}, args...)...)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, store.ErrNotFound
	}
	return nil, nil
}

func (c *Client) execSelect(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	where, args := buildWhere(q.Filters, 1)
	query := fmt.Sprintf(`SELECT id, data, created_at, updated_at FROM %s%s`, table, where)

	if q.OrderKey != nil {
		dir := "ASC"
		if !q.OrderKey.Ascending {
			dir = "DESC"
		}
		col := q.OrderKey.Column
		if isEngineColumn(col) {
			query += fmt.Sprintf(` ORDER BY %s %s`, col, dir)
		} else {
			args = append(args, col)
			query += fmt.Sprintf(` ORDER BY COALESCE(data->>$%d, '') %s`, len(args), dir)
		}
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []store.Row
	for rows.Next() {
		var id, createdAt, updatedAt string
		var data []byte
		if err := rows.Scan(&id, &data, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		row := store.Row{}
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, err
		}
		row["id"] = id
		row["created_at"] = createdAt
		row["updated_at"] = updatedAt
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if strings.Contains(q.Projection, "composition_types(") && table != "composition_types" {
		if err := c.attachCompositionTypes(ctx, result); err != nil {
			return nil, err
		}
	}

	if q.Want {
		if len(result) == 0 {
			return nil, store.ErrNotFound
		}
		return result[:1], nil
	}
	return result, nil
}

func (c *Client) attachCompositionTypes(ctx context.Context, result []store.Row) error {
	types, err := c.execSelect(ctx, "composition_types", store.From("composition_types"))
	if err != nil {
		return err
	}
	byID := make(map[string]store.Row, len(types))
	for _, t := range types {
		byID[t.ID()] = t
	}
	for _, r := range result {
		if t, ok := byID[r.String("composition_type_id")]; ok {
			r["composition_types"] = map[string]interface{}(t)
		} else {
			r["composition_types"] = nil
		}
	}
	return nil
}

// buildWhere renders the AND of all equality filters. Engine columns
// compare directly, everything else compares the text form of the jsonb
// value so numeric and boolean filters behave like the local engine.
func buildWhere(filters []store.Filter, argOffset int) (string, []interface{}) {
	if len(filters) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(filters))
	args := make([]interface{}, 0, len(filters)*2)
	n := argOffset
	for _, f := range filters {
		if isEngineColumn(f.Column) {
			conds = append(conds, fmt.Sprintf("%s = $%d", f.Column, n))
			args = append(args, textForm(f.Value))
			n++
			continue
		}
		conds = append(conds, fmt.Sprintf("data->>$%d = $%d", n, n+1))
		args = append(args, f.Column, textForm(f.Value))
		n += 2
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func textForm(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
