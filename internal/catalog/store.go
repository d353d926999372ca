// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

// Store is a crop catalog kept in a SQLite database. Rows are ordered by
// position, which preserves the catalog order used to break ranking ties.
// The store only supplies catalogs; ranking results are never written back.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at path and ensures the
// schema exists.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS crops (
			position INTEGER PRIMARY KEY,
			name TEXT,
			optimal_temp REAL,
			optimal_humidity REAL,
			water_needs REAL,
			optimal_ph REAL,
			pest_resistance REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_crops_name ON crops(name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import replaces the stored catalog with crops in a single transaction.
// Positions are assigned 1..len(crops) in slice order.
func (s *Store) Import(ctx context.Context, crops []types.CropData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM crops`); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO crops (position, name, optimal_temp, optimal_humidity, water_needs, optimal_ph, pest_resistance)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range crops {
		_, err := stmt.ExecContext(ctx,
			i+1, c.Name, c.OptimalTemp, c.OptimalHumidity,
			c.WaterNeeds, c.OptimalPH, c.PestResistance,
		)
		if err != nil {
			return fmt.Errorf("inserting crop %s: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// Crops returns the stored catalog in position order. A NULL column fails
// with *types.MissingFieldError naming the crop and column.
func (s *Store) Crops(ctx context.Context) ([]types.CropData, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, name, optimal_temp, optimal_humidity, water_needs, optimal_ph, pest_resistance
		 FROM crops ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying crops: %w", err)
	}
	defer rows.Close()

	crops := []types.CropData{}
	for rows.Next() {
		var (
			position int
			name     sql.NullString
			cols     [5]sql.NullFloat64
		)
		if err := rows.Scan(&position, &name, &cols[0], &cols[1], &cols[2], &cols[3], &cols[4]); err != nil {
			return nil, fmt.Errorf("scanning crop row: %w", err)
		}

		raw := RawCrop{
			OptimalTemp:     nullable(cols[0]),
			OptimalHumidity: nullable(cols[1]),
			WaterNeeds:      nullable(cols[2]),
			OptimalPH:       nullable(cols[3]),
			PestResistance:  nullable(cols[4]),
		}
		if name.Valid {
			raw.Name = &name.String
		}

		c, err := raw.Crop(position)
		if err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crops: %w", err)
	}
	return crops, nil
}

// Count returns the number of stored crops.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM crops`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting crops: %w", err)
	}
	return n, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
