// Package report renders sweep results: the fixed-width coverage table and
// an optional sqlite sink.
package report

import "fmt"

// Unit scaling for the byte formatter only; the numeric model never rounds.
const (
	tb = 1 << 40
	gb = 1 << 30
	mb = 1 << 20
	kb = 1 << 10
)

// HumanBytes renders a byte count the way the coverage table wants it:
// integer TB, one-decimal GB/MB below ten of each (with a small slack so
// 9.95 GB prints as 10 GB rather than 10.0 GB), integer kB, bare bytes.
func HumanBytes(v uint64) string {
	switch {
	case v >= tb:
		return fmt.Sprintf("%d TB", v/tb)
	case v >= 10*gb-gb/10:
		return fmt.Sprintf("%d GB", v/gb)
	case v >= gb:
		return fmt.Sprintf("%.1f GB", float64(v)/float64(gb))
	case v >= 10*mb-mb/10:
		return fmt.Sprintf("%d MB", v/mb)
	case v >= mb:
		return fmt.Sprintf("%.1f MB", float64(v)/float64(mb))
	case v >= kb:
		return fmt.Sprintf("%d kB", v/kb)
	}
	return fmt.Sprintf("%d", v)
}

// HumanCount renders a value count with decimal suffixes, truncating.
func HumanCount(v uint64) string {
	const (
		quadrillion = 1_000_000_000_000_000
		trillion    = 1_000_000_000_000
		billion     = 1_000_000_000
		million     = 1_000_000
		thousand    = 1_000
	)
	switch {
	case v >= quadrillion:
		return fmt.Sprintf("%d Q", v/quadrillion)
	case v >= trillion:
		return fmt.Sprintf("%d T", v/trillion)
	case v >= billion:
		return fmt.Sprintf("%d B", v/billion)
	case v >= million:
		return fmt.Sprintf("%d M", v/million)
	case v >= thousand:
		return fmt.Sprintf("%d k", v/thousand)
	}
	return fmt.Sprintf("%d", v)
}
