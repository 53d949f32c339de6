// Package sweep evaluates the layer-file model across a list of value sizes.
package sweep

import (
	"fmt"

	"github.com/google/btree"
	"go.uber.org/zap"

	"layercalc/pkg/model"
)

// Config drives one sweep. Base carries every sizing parameter except the
// value size, which the sweep fills in per iteration.
type Config struct {
	Base       model.Params
	ValueSizes []uint64

	// Log receives one debug line per built model. Nil means silent.
	Log *zap.Logger
}

// ValueSizes returns the power-of-two sizes 2^minShift .. 2^maxShift
// inclusive. The classic sweep is shifts 4..16, 16 bytes through 64 KiB.
func ValueSizes(minShift, maxShift uint) []uint64 {
	if maxShift < minShift {
		return nil
	}
	sizes := make([]uint64, 0, maxShift-minShift+1)
	for shift := minShift; shift <= maxShift; shift++ {
		sizes = append(sizes, 1<<shift)
	}
	return sizes
}

// Results is the outcome of one sweep, ordered by value size.
type Results struct {
	tree *btree.BTreeG[*model.LayerFile]
}

func newResults() *Results {
	return &Results{
		tree: btree.NewG(2, func(a, b *model.LayerFile) bool {
			return a.Params.ValueSize < b.Params.ValueSize
		}),
	}
}

// Len returns the number of models in the sweep.
func (r *Results) Len() int {
	return r.tree.Len()
}

// Get returns the model built for one value size.
func (r *Results) Get(valueSize uint64) (*model.LayerFile, bool) {
	probe := &model.LayerFile{Params: model.Params{ValueSize: valueSize}}
	return r.tree.Get(probe)
}

// Ascend visits every model in increasing value-size order until fn returns
// false.
func (r *Results) Ascend(fn func(*model.LayerFile) bool) {
	r.tree.Ascend(func(lf *model.LayerFile) bool {
		return fn(lf)
	})
}

// Run builds one fresh LayerFile per configured value size. Models are
// independent; nothing is shared or reused across iterations. The first
// construction error aborts the sweep.
func Run(cfg Config) (*Results, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	if len(cfg.ValueSizes) == 0 {
		return nil, fmt.Errorf("sweep: no value sizes configured")
	}

	results := newResults()
	for _, valueSize := range cfg.ValueSizes {
		params := cfg.Base
		params.ValueSize = valueSize
		lf, err := model.NewLayerFile(params)
		if err != nil {
			return nil, fmt.Errorf("sweep at value size %d: %w", valueSize, err)
		}
		log.Debug("built layer file model",
			zap.Uint64("value_size", valueSize),
			zap.Uint64("total_values", params.TotalValues()),
			zap.Uint64("values_per_data_block", lf.ValuesPerDataBlock),
			zap.Int("data_index_height", lf.Index(model.KindData).Height()),
		)
		results.tree.ReplaceOrInsert(lf)
	}
	return results, nil
}
