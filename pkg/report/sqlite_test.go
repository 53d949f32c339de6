package report

import (
	"database/sql"
	"path/filepath"
	"testing"

	"layercalc/pkg/model"
)

func TestSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sizing.db")
	sink, err := OpenSink(path)
	if err != nil {
		t.Fatalf("OpenSink: %v", err)
	}
	defer sink.Close()

	results := runSweep(t, 4, 6)
	if err := sink.WriteResults(results, model.Kinds); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	// Idempotent re-run: same primary keys, same row count.
	if err := sink.WriteResults(results, model.Kinds); err != nil {
		t.Fatalf("WriteResults again: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM index_sizing").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 3*4 {
		t.Errorf("row count: got %d, want 12", count)
	}

	var height int
	var coverage string
	var totalSize int64
	err = db.QueryRow(
		"SELECT height, coverage, total_size FROM index_sizing WHERE value_size = 16 AND kind = 'data'",
	).Scan(&height, &coverage, &totalSize)
	if err != nil {
		t.Fatalf("query data row: %v", err)
	}
	if height != 4 {
		t.Errorf("height: got %d, want 4", height)
	}
	if coverage != "131072,33554432,8589934592,2199023255552" {
		t.Errorf("coverage: got %q", coverage)
	}
	if totalSize != 4311818240 {
		t.Errorf("total size: got %d, want 4311818240", totalSize)
	}
}

func TestSinkKindFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sizing.db")
	sink, err := OpenSink(path)
	if err != nil {
		t.Fatalf("OpenSink: %v", err)
	}
	defer sink.Close()

	if err := sink.WriteResults(runSweep(t, 4, 4), []model.Kind{model.KindFilter}); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM index_sizing WHERE kind != 'filter'").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("unselected kinds written: %d rows", count)
	}
}
