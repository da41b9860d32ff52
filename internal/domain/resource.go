package domain

// ResourceKind names one of the per-day files a partition tracks, plus the
// partition-wide test helpers file.
type ResourceKind string

const (
	KindSolution ResourceKind = "solution"
	KindTest     ResourceKind = "test"
	KindExample  ResourceKind = "example"
	KindInput    ResourceKind = "input"
	KindPuzzle   ResourceKind = "puzzle"
	KindHelpers  ResourceKind = "helpers"
)

// ResourceSet bundles the resolved paths for one (day, partition) pair.
type ResourceSet struct {
	Solution string
	Test     string
	Example  string
	Input    string
	Puzzle   string
}
