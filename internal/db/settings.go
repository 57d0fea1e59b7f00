package db

import (
	"context"
	"fmt"
)

// GetSettings retrieves all user settings as a flat key/value map.
func (db *DB) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := db.pool.Query(ctx, `SELECT chave, valor FROM configuracoes`)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, nil
}

// SaveSettings upserts the given settings. Keys absent from the map keep
// their stored values.
func (db *DB) SaveSettings(ctx context.Context, settings map[string]string) error {
	for key, value := range settings {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO configuracoes (chave, valor)
			 VALUES ($1, $2)
			 ON CONFLICT (chave) DO UPDATE SET valor = $2, updated_at = NOW()`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}
