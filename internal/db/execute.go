package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Execute runs a sanitized query with the given parameter map and
// materializes every row as a column-name -> value map. Parameters bind
// by name: the query references them as @key placeholders. Zero rows
// yields an empty slice, not an error.
func (c *Connection) Execute(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	rows, err := c.Pool.Query(ctx, query, pgx.NamedArgs(params))
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	fieldDescriptions := rows.FieldDescriptions()
	result := make([]map[string]any, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rowMap := make(map[string]any, len(values))
		for i, value := range values {
			rowMap[string(fieldDescriptions[i].Name)] = value
		}
		result = append(result, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return result, nil
}
