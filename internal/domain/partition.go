package domain

import "strconv"

// Partition scopes all per-day resources to a workspace subtree: either the
// unpartitioned root (src/solutions, tests, data) or a year directory.
type Partition struct {
	year int
}

func RootPartition() Partition {
	return Partition{}
}

func YearPartition(year int) Partition {
	return Partition{year: year}
}

func (p Partition) IsRoot() bool {
	return p.year == 0
}

func (p Partition) Year() int {
	return p.year
}

func (p Partition) String() string {
	if p.IsRoot() {
		return "root"
	}
	return strconv.Itoa(p.year)
}
