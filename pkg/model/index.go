package model

import "fmt"

// Index models one index tree of a layer file: how many levels it needs and
// how much it costs, given the size of one entry and the number of values
// covered by the level directly beneath it.
type Index struct {
	params Params

	// Kind of this index.
	Kind Kind

	// EntrySize is the size of one index entry, in bytes.
	EntrySize uint64

	// EntriesPerBlock is the number of entries that fit in one index block,
	// floored at params.MinBranch.
	EntriesPerBlock uint64

	// BlockSize is EntrySize * EntriesPerBlock.
	BlockSize uint64

	// Coverage[0] is the number of values covered by a level-1 index block,
	// that is, baseCoverage * EntriesPerBlock. Coverage[k] multiplies the
	// previous level by EntriesPerBlock again. The sequence runs until the
	// final element reaches params.TotalValues(). Empty when the base level
	// alone already covers every value.
	Coverage []uint64
}

// NewIndex builds the coverage model for one index kind. baseCoverage is the
// number of values covered by whatever sits directly below the index: a data
// block for the data and row indexes, a fixed filter span for the filter
// index.
//
// The coverage recurrence only terminates when each level covers strictly
// more than the one below, so a fan-out below 2 is rejected up front rather
// than looping forever.
func NewIndex(params Params, kind Kind, entrySize, baseCoverage uint64) (*Index, error) {
	if entrySize == 0 {
		return nil, fmt.Errorf("%s index: entry size must be positive", kind)
	}
	if baseCoverage == 0 {
		return nil, fmt.Errorf("%s index: base coverage must be positive", kind)
	}

	entriesPerBlock := params.MinIndexBlock / entrySize
	if entriesPerBlock < params.MinBranch {
		entriesPerBlock = params.MinBranch
	}
	if entriesPerBlock < 2 {
		return nil, fmt.Errorf("%s index: fan-out %d below 2 (min_index_block=%d, entry_size=%d, min_branch=%d)",
			kind, entriesPerBlock, params.MinIndexBlock, entrySize, params.MinBranch)
	}

	ix := &Index{
		params:          params,
		Kind:            kind,
		EntrySize:       entrySize,
		EntriesPerBlock: entriesPerBlock,
		BlockSize:       entrySize * entriesPerBlock,
	}

	last := baseCoverage
	for last < params.TotalValues() {
		last *= entriesPerBlock
		ix.Coverage = append(ix.Coverage, last)
	}
	return ix, nil
}

// Height returns the number of index levels above the base level.
func (ix *Index) Height() int {
	return len(ix.Coverage)
}

// LevelBlocks returns the number of index blocks at coverage level i
// (0-based). A partially filled final block still costs a whole block, so
// this is a pure-integer ceiling of TotalValues over the level's coverage.
func (ix *Index) LevelBlocks(i int) uint64 {
	totalValues := ix.params.TotalValues()
	coverage := ix.Coverage[i]
	blocks := totalValues / coverage
	if totalValues%coverage > 0 {
		blocks++
	}
	return blocks
}

// TotalSize returns the number of bytes in the index, summed across all of
// its levels.
func (ix *Index) TotalSize() uint64 {
	var blocks uint64
	for i := range ix.Coverage {
		blocks += ix.LevelBlocks(i)
	}
	return blocks * ix.BlockSize
}
