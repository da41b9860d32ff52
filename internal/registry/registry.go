// Package registry enumerates the days already scaffolded in a partition.
// The solution file's existence is the only marker: there is no index to
// drift out of sync, and the listing is recomputed on every call.
package registry

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"adventcli/internal/domain"
	"adventcli/internal/layout"
)

type Enumerator struct {
	layout *layout.Resolver
}

func NewEnumerator(resolver *layout.Resolver) *Enumerator {
	return &Enumerator{layout: resolver}
}

// List returns the scaffolded days in ascending order with no duplicates.
// Filenames that do not parse as dayNN.go are skipped, so doc.go and stray
// files never break enumeration. A missing solutions directory is an empty
// partition, not an error.
func (e *Enumerator) List(p domain.Partition) ([]domain.Day, error) {
	dir := e.layout.SolutionsDir(p)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read solutions directory %s: %w", dir, err)
	}

	seen := make(map[domain.Day]struct{}, len(entries))
	days := make([]domain.Day, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		day, ok := parseDayFile(entry.Name())
		if !ok {
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}

		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	return days, nil
}

func parseDayFile(name string) (domain.Day, bool) {
	if !strings.HasPrefix(name, "day") || !strings.HasSuffix(name, ".go") {
		return 0, false
	}
	if strings.HasSuffix(name, "_test.go") {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "day"), ".go"))
	if err != nil {
		return 0, false
	}

	day := domain.Day(n)
	if !day.Valid() {
		return 0, false
	}

	return day, true
}
