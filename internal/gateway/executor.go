package gateway

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLExecutor executes gateway queries against the shared connection pool.
// Parameters are always bound positionally, never concatenated into the
// query text.
type SQLExecutor struct {
	db *sqlx.DB
}

// NewSQLExecutor creates an executor backed by db.
func NewSQLExecutor(db *sqlx.DB) *SQLExecutor {
	return &SQLExecutor{db: db}
}

// Query runs the query with the given positional parameters and returns all
// rows as column-name to value maps. The data slice is non-nil even for an
// empty result so it serializes as [] rather than null.
func (e *SQLExecutor) Query(ctx context.Context, query string, params []interface{}) ([]map[string]interface{}, error) {
	rows, err := e.db.QueryxContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]map[string]interface{}, 0)
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		// lib/pq surfaces text columns as []byte through MapScan.
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
