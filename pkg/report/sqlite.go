package report

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"layercalc/pkg/model"
	"layercalc/pkg/sweep"
)

// Sink writes sweep rows to a sqlite database so results can be queried or
// diffed later. It is a report output, nothing more; the model never reads
// it back.
type Sink struct {
	db *sql.DB
}

// OpenSink opens (or creates) the database at path and ensures the result
// table exists.
func OpenSink(path string) (*Sink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite sink: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS index_sizing (
		value_size        INTEGER NOT NULL,
		kind              TEXT    NOT NULL,
		entries_per_block INTEGER NOT NULL,
		block_size        INTEGER NOT NULL,
		height            INTEGER NOT NULL,
		coverage          TEXT    NOT NULL,
		total_size        INTEGER NOT NULL,
		PRIMARY KEY (value_size, kind)
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init index_sizing table: %w", err)
	}
	return &Sink{db: db}, nil
}

// WriteResults inserts one row per selected index kind per value size, all
// in one transaction. Re-running with the same parameters overwrites.
func (s *Sink) WriteResults(results *sweep.Results, kinds []model.Kind) error {
	selected := make(map[model.Kind]bool, len(kinds))
	for _, kind := range kinds {
		selected[kind] = true
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO index_sizing
		(value_size, kind, entries_per_block, block_size, height, coverage, total_size)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	var execErr error
	results.Ascend(func(lf *model.LayerFile) bool {
		for _, ix := range lf.Indexes {
			if !selected[ix.Kind] {
				continue
			}
			_, execErr = stmt.Exec(
				int64(lf.Params.ValueSize),
				ix.Kind.String(),
				int64(ix.EntriesPerBlock),
				int64(ix.BlockSize),
				ix.Height(),
				joinCoverage(ix.Coverage),
				int64(ix.TotalSize()),
			)
			if execErr != nil {
				return false
			}
		}
		return true
	})
	if execErr != nil {
		tx.Rollback()
		return execErr
	}
	return tx.Commit()
}

func (s *Sink) Close() error {
	return s.db.Close()
}

func joinCoverage(coverage []uint64) string {
	parts := make([]string, len(coverage))
	for i, c := range coverage {
		parts[i] = strconv.FormatUint(c, 10)
	}
	return strings.Join(parts, ",")
}
