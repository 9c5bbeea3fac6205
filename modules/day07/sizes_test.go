package day07

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizesOf flattens a table into path -> size for compact comparisons.
func sizesOf(t Table) map[string]int64 {
	out := make(map[string]int64, len(t))
	for p, e := range t {
		out[p] = e.Size
	}
	return out
}

func TestBuild_Scenario(t *testing.T) {
	// --- Arrange ---
	transcript := `$ cd /
$ ls
dir a
14848514 b.txt
$ cd a
$ ls
29116 f
$ cd ..
`

	// --- Act ---
	sizes, err := Build(context.Background(), transcript)

	// --- Assert ---
	require.NoError(t, err)
	want := Table{
		"/":      {Kind: Directory, Path: "/", Size: 14877630},
		"/a":     {Kind: Directory, Path: "/a", Size: 29116},
		"/b.txt": {Kind: File, Path: "/b.txt", Size: 14848514},
		"/a/f":   {Kind: File, Path: "/a/f", Size: 29116},
	}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Example(t *testing.T) {
	sizes, err := Build(context.Background(), example)
	require.NoError(t, err)

	got := sizesOf(Table{
		"/":      sizes["/"],
		"/a":     sizes["/a"],
		"/a/e":   sizes["/a/e"],
		"/d":     sizes["/d"],
		"/a/e/i": sizes["/a/e/i"],
	})
	want := map[string]int64{"/": 48381165, "/a": 94853, "/a/e": 584, "/d": 24933642, "/a/e/i": 584}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RootEqualsSumOfFiles(t *testing.T) {
	sizes, err := Build(context.Background(), example)
	require.NoError(t, err)

	var total int64
	for _, e := range sizes {
		if e.Kind == File {
			total += e.Size
		}
	}
	assert.Equal(t, total, sizes[Root].Size)
}

func TestBuild_SynthesizesUnlistedAncestors(t *testing.T) {
	// --- Arrange ---
	// Neither /x nor /x/y is ever announced with a dir line.
	transcript := "$ cd /\n$ cd x\n$ cd y\n$ ls\n10 f\n"

	// --- Act ---
	sizes, err := Build(context.Background(), transcript)

	// --- Assert ---
	require.NoError(t, err)
	for _, p := range []string{"/", "/x", "/x/y"} {
		require.Contains(t, sizes, p)
		assert.Equal(t, Directory, sizes[p].Kind, p)
		assert.Equal(t, int64(10), sizes[p].Size, p)
	}
}

func TestBuild_LateDirListingDoesNotReset(t *testing.T) {
	// --- Arrange ---
	// /a accumulates size before its parent's listing announces it.
	transcript := "$ cd /a\n$ ls\n7 f\n$ cd /\n$ ls\ndir a\n3 g\n"

	// --- Act ---
	sizes, err := Build(context.Background(), transcript)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"/": 10, "/a": 7, "/a/f": 7, "/g": 3}, sizesOf(sizes))
}

func TestBuild_RepeatedListingIsIdempotent(t *testing.T) {
	transcript := "$ cd /\n$ ls\n5 f\n$ ls\n5 f\n"

	sizes, err := Build(context.Background(), transcript)

	require.NoError(t, err)
	assert.Equal(t, int64(5), sizes[Root].Size)
}

func TestBuild_FileAtDirectoryPathStillRollsUp(t *testing.T) {
	// --- Arrange ---
	transcript := "$ cd /\n$ ls\ndir x\n7 x\n"

	// --- Act ---
	sizes, err := Build(context.Background(), transcript)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, sizes, Root)
	assert.Equal(t, &Entry{Kind: Directory, Path: Root, Size: 7}, sizes[Root])
	assert.Equal(t, &Entry{Kind: Directory, Path: "/x"}, sizes["/x"])

	used, err := UsedSpace(sizes)
	require.NoError(t, err)
	assert.Equal(t, int64(7), used)
}

func TestBuild_ListingBeforeFirstCdLandsInRoot(t *testing.T) {
	sizes, err := Build(context.Background(), "$ ls\n4 f\n")

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"/": 4, "/f": 4}, sizesOf(sizes))
}

func TestBuild_AbsoluteCdResets(t *testing.T) {
	transcript := "$ cd /\n$ cd a\n$ cd /\n$ ls\n1 f\n"

	sizes, err := Build(context.Background(), transcript)

	require.NoError(t, err)
	assert.Contains(t, sizes, "/f")
	assert.NotContains(t, sizes, "/a/f")
}

func TestBuild_CdAboveRootFails(t *testing.T) {
	_, err := Build(context.Background(), "$ cd /\n$ cd ..\n")

	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	var inputErr *puzzle.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 2, inputErr.Line)
}

func TestBuild_BadSizeNamesLine(t *testing.T) {
	_, err := Build(context.Background(), "$ cd /\n$ ls\n12x f\n")

	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"12x"`)
}

func TestBuild_SkipsBlankLines(t *testing.T) {
	sizes, err := Build(context.Background(), "$ cd /\n\n$ ls\n\n2 f\n\n")

	require.NoError(t, err)
	assert.Equal(t, int64(2), sizes[Root].Size)
}
