// Package local is a file-backed implementation of the store contract. It
// mimics the hosted backend's query surface over one JSON document per
// table, so the rest of the system runs without any external service.
// Intended for single-user local use: row counts stay small enough that
// round-tripping the whole table on every call is fine, and there is no
// cross-process locking (two concurrent processes can clobber each other).
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

// namespace prefixes every table file, mirroring the key prefix the
// dashboard uses in browser storage.
const namespace = "motioncut"

type Client struct {
	dir string
	mu  sync.Mutex
}

// Open prepares the data directory and seeds the composition_types table
// from the registry on first use.
func Open(dir string) (*Client, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	c := &Client{dir: dir}
	if err := c.ensureCompositionTypes(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Execute(ctx context.Context, q store.Query) ([]store.Row, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch q.Verb {
	case store.VerbInsert:
		return c.execInsert(q)
	case store.VerbDelete:
		return c.execDelete(q)
	case store.VerbUpdate:
		return c.execUpdate(q)
	default:
		return c.execSelect(q)
	}
}

func (c *Client) execInsert(q store.Query) ([]store.Row, error) {
	rows, err := c.readTable(q.Table)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	inserted := make([]store.Row, 0, len(q.InsertRows))
	for _, staged := range q.InsertRows {
		row := staged.Clone()
		// id and timestamps are engine-assigned, caller values are ignored.
		row["id"] = uuid.NewString()
		row["created_at"] = now
		row["updated_at"] = now
		inserted = append(inserted, row)
	}

	if err := c.writeTable(q.Table, append(rows, inserted...)); err != nil {
		return nil, err
	}
	if q.Want && len(inserted) > 0 {
		return inserted[:1], nil
	}
	return inserted, nil
}

func (c *Client) execDelete(q store.Query) ([]store.Row, error) {
	rows, err := c.readTable(q.Table)
	if err != nil {
		return nil, err
	}

	kept := rows[:0:0]
	for _, r := range rows {
		if !matches(r, q.Filters) {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(rows) {
		// Zero matches is an error signal, and the table stays untouched.
		return nil, store.ErrNotFound
	}
	if err := c.writeTable(q.Table, kept); err != nil {
		return nil, err
	}
	return nil, nil
}

func (c *Client) execUpdate(q store.Query) ([]store.Row, error) {
	rows, err := c.readTable(q.Table)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var patched []store.Row
	for i, r := range rows {
		if !matches(r, q.Filters) {
			continue
		}
		next := r.Clone()
		for k, v := range q.Patch {
			next[k] = v
		}
		next["updated_at"] = now
		rows[i] = next
		patched = append(patched, next)
	}
	if len(patched) == 0 {
		return nil, store.ErrNotFound
	}
	if err := c.writeTable(q.Table, rows); err != nil {
		return nil, err
	}
	return patched, nil
}

func (c *Client) execSelect(q store.Query) ([]store.Row, error) {
	rows, err := c.readTable(q.Table)
	if err != nil {
		return nil, err
	}

	var result []store.Row
	for _, r := range rows {
		if matches(r, q.Filters) {
			result = append(result, r)
		}
	}

	if joinsCompositionTypes(q.Projection) && q.Table != tableCompositionTypes {
		types, err := c.readTable(tableCompositionTypes)
		if err != nil {
			return nil, err
		}
		for i, r := range result {
			enriched := r.Clone()
			enriched[tableCompositionTypes] = findByID(types, r.String("composition_type_id"))
			result[i] = enriched
		}
	}

	if q.OrderKey != nil {
		col, asc := q.OrderKey.Column, q.OrderKey.Ascending
		sort.SliceStable(result, func(i, j int) bool {
			a, b := stringify(result[i][col]), stringify(result[j][col])
			if asc {
				return a < b
			}
			return a > b
		})
	}

	if q.Want {
		if len(result) == 0 {
			return nil, store.ErrNotFound
		}
		return result[:1], nil
	}
	return result, nil
}

// findByID returns the matching row, or nil so the attached key is
// explicitly null for a dangling foreign key.
func findByID(rows []store.Row, id string) interface{} {
	for _, r := range rows {
		if r.ID() == id {
			return map[string]interface{}(r.Clone())
		}
	}
	return nil
}

func matches(r store.Row, filters []store.Filter) bool {
	for _, f := range filters {
		if !equalValues(r[f.Column], f.Value) {
			return false
		}
	}
	return true
}

// equalValues compares a stored (JSON round-tripped) value against a filter
// value. Numbers compare numerically so int filters match float64 storage.
func equalValues(a, b interface{}) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func stringify(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

func (c *Client) path(table string) string {
	return filepath.Join(c.dir, namespace+"_"+table+".json")
}

func (c *Client) readTable(table string) ([]store.Row, error) {
	data, err := os.ReadFile(c.path(table))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	var rows []store.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		// A corrupt table starts over empty, same as the browser store.
		return nil, nil
	}
	return rows, nil
}

func (c *Client) writeTable(table string, rows []store.Row) error {
	if rows == nil {
		rows = []store.Row{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path(table), data, 0o644); err != nil {
		return fmt.Errorf("failed to write table %s: %w", table, err)
	}
	return nil
}

const tableCompositionTypes = "composition_types"

func joinsCompositionTypes(projection string) bool {
	return strings.Contains(projection, tableCompositionTypes+"(")
}

// ensureCompositionTypes seeds the composition_types table from the static
// registry so lookups work on a fresh data directory.
func (c *Client) ensureCompositionTypes() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, err := c.readTable(tableCompositionTypes)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	seed := make([]store.Row, 0, len(registry.All()))
	for _, t := range registry.All() {
		seed = append(seed, store.Row{
			"id":             uuid.NewString(),
			"name":           t.ID,
			"display_name":   t.DisplayName,
			"description":    t.Description,
			"category":       string(t.Category),
			"default_props":  map[string]interface{}(t.Defaults.Clone()),
			"schema_version": float64(1),
			"created_at":     now,
		})
	}
	return c.writeTable(tableCompositionTypes, seed)
}
