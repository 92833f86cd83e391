package batch

import (
	"fmt"
	"path/filepath"
	"strings"
)

// outputNames maps every path to a distinct output stem. The first path
// with a given stem keeps it; later ones get the first free "_N" suffix.
func outputNames(paths []string) []string {
	stems := make([]string, len(paths))
	taken := make(map[string]bool, len(paths))
	for i, p := range paths {
		stems[i] = stem(p)
	}
	// plain stems are reserved first so a later "a_1.png" keeps its name
	// over a qualified duplicate of "a"
	for _, stem := range stems {
		taken[stem] = true
	}

	names := make([]string, len(paths))
	seen := make(map[string]bool, len(paths))
	for i, stem := range stems {
		if !seen[stem] {
			seen[stem] = true
			names[i] = stem
			continue
		}
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s_%d", stem, n)
			if !taken[candidate] {
				taken[candidate] = true
				names[i] = candidate
				break
			}
		}
	}
	return names
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
