package model

import "fmt"

// Per-kind entry sizes. The data index is the exception: its entries hold a
// first and last value inline, so it scales with the value size.
const (
	c1RowEntrySize  = 6  // child offset, size, index/data flag
	rowEntrySize    = 12 // c1row fields plus starting row number
	filterEntrySize = 5

	// filterSpan is the number of values summarized by one filter, regardless
	// of how many values fit in a data block.
	filterSpan = 65536
)

// LayerFile models the block layout of one hypothetical layer file: the data
// block geometry plus one Index per kind. Everything is derived from Params
// at construction and never mutated.
type LayerFile struct {
	Params Params

	// ValuesPerDataBlock is the number of values in one data block, floored
	// at Params.MinBranch.
	ValuesPerDataBlock uint64

	// DataBlockSize is ValueSize * ValuesPerDataBlock.
	DataBlockSize uint64

	// TotalDataBlocks is the number of data blocks needed for TotalDataSize.
	TotalDataBlocks uint64

	// Indexes holds all four index models in report order (data, c1row, row,
	// filter). Selecting which ones to show is the caller's business.
	Indexes []*Index
}

// NewLayerFile derives the full block layout for params.
func NewLayerFile(params Params) (*LayerFile, error) {
	if params.ValueSize == 0 {
		return nil, fmt.Errorf("layer file: value size must be positive")
	}

	valuesPerDataBlock := params.MinDataBlock / params.ValueSize
	if valuesPerDataBlock < params.MinBranch {
		valuesPerDataBlock = params.MinBranch
	}
	dataBlockSize := params.ValueSize * valuesPerDataBlock

	lf := &LayerFile{
		Params:             params,
		ValuesPerDataBlock: valuesPerDataBlock,
		DataBlockSize:      dataBlockSize,
		TotalDataBlocks:    params.TotalDataSize / dataBlockSize,
	}

	for _, kind := range Kinds {
		entrySize, baseCoverage := kindPolicy(params, kind, valuesPerDataBlock)
		ix, err := NewIndex(params, kind, entrySize, baseCoverage)
		if err != nil {
			return nil, err
		}
		lf.Indexes = append(lf.Indexes, ix)
	}
	return lf, nil
}

// kindPolicy returns the entry size and base coverage for one index kind.
func kindPolicy(params Params, kind Kind, valuesPerDataBlock uint64) (entrySize, baseCoverage uint64) {
	switch kind {
	case KindData:
		return 2 * params.ValueSize, valuesPerDataBlock
	case KindC1Row:
		return c1RowEntrySize, valuesPerDataBlock
	case KindRow:
		return rowEntrySize, valuesPerDataBlock
	case KindFilter:
		return filterEntrySize, filterSpan
	}
	panic(fmt.Sprintf("unhandled index kind %v", kind))
}

// Index returns the model for one kind, or nil if kind is unknown.
func (lf *LayerFile) Index(kind Kind) *Index {
	for _, ix := range lf.Indexes {
		if ix.Kind == kind {
			return ix
		}
	}
	return nil
}
