package day07

import (
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// SumAtMost returns the total size of all directories whose size is at most
// threshold. Nested directories are counted once each, so files may be
// counted more than once.
func SumAtMost(t Table, threshold int64) int64 {
	var sum int64
	for _, d := range t.Directories() {
		if d.Size <= threshold {
			sum += d.Size
		}
	}
	return sum
}

// UsedSpace returns the largest directory size, which is the root's size in
// any well-formed table.
func UsedSpace(t Table) (int64, error) {
	dirs := t.Directories()
	if len(dirs) == 0 {
		return 0, puzzle.Empty("used space")
	}
	used := dirs[0].Size
	for _, d := range dirs[1:] {
		used = max(used, d.Size)
	}
	return used, nil
}

// SmallestToFree returns the size of the smallest directory whose removal
// leaves at least free bytes unused on a disk of the given capacity.
func SmallestToFree(t Table, disk, free int64) (int64, error) {
	used, err := UsedSpace(t)
	if err != nil {
		return 0, err
	}
	required := used - (disk - free)

	found := false
	var smallest int64
	for _, d := range t.Directories() {
		if d.Size < required {
			continue
		}
		if !found || d.Size < smallest {
			smallest = d.Size
			found = true
		}
	}
	if !found {
		return 0, puzzle.Empty("directory to delete")
	}
	return smallest, nil
}
