package model

// Params holds the sizing inputs for one hypothetical layer file.
// It is a value type and never mutated after construction.
type Params struct {
	// TotalDataSize is the total size of all data stored in the file, in bytes.
	TotalDataSize uint64

	// ValueSize is the size of one stored value, in bytes. The file holds
	// TotalDataSize / ValueSize of these.
	ValueSize uint64

	// MinDataBlock is the minimum size of a data block, in bytes. Should be a
	// power of 2, 4096 or greater.
	MinDataBlock uint64

	// MinIndexBlock is the minimum size of an index block, in bytes. Same
	// guidance as MinDataBlock.
	MinIndexBlock uint64

	// MinBranch is the minimum branching factor of data and index blocks.
	// Must be at least 2 for index construction to terminate; 4 or more is
	// sensible.
	MinBranch uint64
}

// TotalValues returns the number of values stored in the file. Truncating
// division; a trailing partial value is not counted.
func (p Params) TotalValues() uint64 {
	return p.TotalDataSize / p.ValueSize
}
