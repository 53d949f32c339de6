package sweep

import (
	"testing"

	"layercalc/pkg/model"
)

func baseParams() model.Params {
	return model.Params{
		TotalDataSize: 1 << 40,
		MinDataBlock:  8192,
		MinIndexBlock: 8192,
		MinBranch:     32,
	}
}

func TestValueSizes(t *testing.T) {
	sizes := ValueSizes(4, 16)
	if len(sizes) != 13 {
		t.Fatalf("size count: got %d, want 13", len(sizes))
	}
	if sizes[0] != 16 || sizes[len(sizes)-1] != 65536 {
		t.Errorf("bounds: got %d..%d, want 16..65536", sizes[0], sizes[len(sizes)-1])
	}
	if got := ValueSizes(10, 4); got != nil {
		t.Errorf("inverted bounds: got %v, want nil", got)
	}
	if got := ValueSizes(5, 5); len(got) != 1 || got[0] != 32 {
		t.Errorf("single shift: got %v, want [32]", got)
	}
}

func TestRunOrdering(t *testing.T) {
	results, err := Run(Config{Base: baseParams(), ValueSizes: ValueSizes(4, 16)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results.Len() != 13 {
		t.Fatalf("result count: got %d, want 13", results.Len())
	}

	var prev uint64
	results.Ascend(func(lf *model.LayerFile) bool {
		if lf.Params.ValueSize <= prev {
			t.Errorf("out of order: %d after %d", lf.Params.ValueSize, prev)
		}
		prev = lf.Params.ValueSize
		return true
	})
	if prev != 65536 {
		t.Errorf("last value size: got %d, want 65536", prev)
	}
}

func TestRunGet(t *testing.T) {
	results, err := Run(Config{Base: baseParams(), ValueSizes: ValueSizes(4, 16)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	lf, ok := results.Get(16)
	if !ok {
		t.Fatal("no model for value size 16")
	}
	if lf.ValuesPerDataBlock != 512 {
		t.Errorf("values per data block: got %d, want 512", lf.ValuesPerDataBlock)
	}
	if _, ok := results.Get(17); ok {
		t.Error("unexpected model for value size 17")
	}
}

func TestRunIndependentModels(t *testing.T) {
	results, err := Run(Config{Base: baseParams(), ValueSizes: []uint64{16, 32}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	a, _ := results.Get(16)
	b, _ := results.Get(32)
	if a == b {
		t.Fatal("sweep reused a model across value sizes")
	}
	if a.Params.ValueSize != 16 || b.Params.ValueSize != 32 {
		t.Errorf("params crossed: %d, %d", a.Params.ValueSize, b.Params.ValueSize)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(Config{Base: baseParams()}); err == nil {
		t.Error("expected error for empty sweep")
	}

	bad := baseParams()
	bad.MinIndexBlock = 0
	bad.MinBranch = 1
	if _, err := Run(Config{Base: bad, ValueSizes: []uint64{16}}); err == nil {
		t.Error("expected fan-out error to abort the sweep")
	}
}
