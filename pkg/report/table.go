package report

import (
	"fmt"
	"io"

	"layercalc/pkg/model"
	"layercalc/pkg/sweep"
)

// maxCoverageColumns is the number of L1..Ln columns in the banner. Trees
// taller than this do not occur for sane parameters.
const maxCoverageColumns = 7

const banner = `
         # of   Values        Entries            # of values covered by a single index block
 Value  Values   /Data         /Index  Index   -----------------------------------------------   Index
  Size  in 1TB   Block  Index   Block  Height    L1     L2     L3     L4     L5     L6     L7     Size
------  ------  ------  -----  ------  ------  -----  -----  -----  -----  -----  -----  -----  ------
`

// Table writes the coverage report for a sweep: a parameter header, the
// column banner, then one row per selected index kind per value size. The
// value-size columns print only on the first kind row of each model. Kind
// selection happens here; every model always carries all four indexes.
func Table(w io.Writer, base model.Params, results *sweep.Results, kinds []model.Kind) {
	selected := make(map[model.Kind]bool, len(kinds))
	for _, kind := range kinds {
		selected[kind] = true
	}

	fmt.Fprintf(w, "Index coverage for %s data, min_branch=%d, min_data_block=%d, min_index_block=%d:\n",
		HumanBytes(base.TotalDataSize), base.MinBranch, base.MinDataBlock, base.MinIndexBlock)
	fmt.Fprint(w, banner)

	results.Ascend(func(lf *model.LayerFile) bool {
		first := true
		for _, ix := range lf.Indexes {
			if !selected[ix.Kind] {
				continue
			}
			if first {
				fmt.Fprintf(w, "%5s  %7s  %6d",
					HumanBytes(lf.Params.ValueSize),
					HumanCount(lf.Params.TotalValues()),
					lf.ValuesPerDataBlock)
				first = false
			} else {
				fmt.Fprintf(w, "%5s  %7s  %6s", "", "", "")
			}
			fmt.Fprintf(w, "  %6s %6d  %6d", ix.Kind, ix.EntriesPerBlock, ix.Height())
			for _, coverage := range ix.Coverage {
				fmt.Fprintf(w, "  %5s", HumanCount(coverage))
			}
			for i := ix.Height(); i < maxCoverageColumns; i++ {
				fmt.Fprint(w, "       ")
			}
			fmt.Fprintf(w, "  %6s\n", HumanBytes(ix.TotalSize()))
		}
		return true
	})
}
