package day07

import (
	"context"
	"path"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Root is the path of the filesystem root.
const Root = "/"

// Kind distinguishes directories from files in the size table.
type Kind int

const (
	Directory Kind = iota
	File
)

func (k Kind) String() string {
	if k == File {
		return "file"
	}
	return "dir"
}

// Entry is one path in the size table. A directory's Size is the total of
// every file beneath it; a file's Size is its own size.
type Entry struct {
	Kind Kind
	Path string
	Size int64
}

// Table maps absolute paths to their entries.
type Table map[string]*Entry

// Directories returns the directory entries of t.
func (t Table) Directories() []*Entry {
	dirs := make([]*Entry, 0, len(t))
	for _, e := range t {
		if e.Kind == Directory {
			dirs = append(dirs, e)
		}
	}
	return dirs
}

// folder is the accumulator threaded through the transcript: the current
// working directory and the table built so far.
type folder struct {
	cwd   string
	sizes Table
}

// Build folds a transcript into a size table. The working directory starts
// at the root, so a listing before the first cd lands there.
func Build(ctx context.Context, transcript string) (Table, error) {
	logger := ctxlog.FromContext(ctx)
	acc := &folder{cwd: Root, sizes: Table{}}

	for i, raw := range puzzle.Lines(transcript) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		l, err := tokenize(i+1, raw)
		if err != nil {
			return nil, err
		}
		if err := acc.apply(ctx, i+1, raw, l); err != nil {
			return nil, err
		}
	}

	logger.Debug("Size table built.", "entries", len(acc.sizes))
	return acc.sizes, nil
}

// apply folds one tokenized line into the accumulator.
func (f *folder) apply(ctx context.Context, n int, raw string, l line) error {
	switch l.kind {
	case changeDir:
		f.cwd = join(f.cwd, l.name)
	case changeDirUp:
		if f.cwd == Root {
			return puzzle.Malformed(n, raw, "cd .. above the root")
		}
		f.cwd = path.Dir(f.cwd)
	case list:
		// Listing output follows; nothing changes until it arrives.
	case dirListing:
		p := join(f.cwd, l.name)
		if _, exists := f.sizes[p]; !exists {
			f.sizes[p] = &Entry{Kind: Directory, Path: p}
		}
	case fileListing:
		f.addFile(ctx, join(f.cwd, l.name), l.size)
	}
	return nil
}

// addFile records a file and adds its size to every ancestor directory,
// creating directories that have not been seen yet. A repeated file listing
// is counted once, so the root always equals the sum of distinct files even
// when a directory is listed twice. A path already known as a directory
// keeps its entry, but the size still rolls up to the root.
func (f *folder) addFile(ctx context.Context, p string, size int64) {
	logger := ctxlog.FromContext(ctx)
	switch existing, exists := f.sizes[p]; {
	case !exists:
		f.sizes[p] = &Entry{Kind: File, Path: p, Size: size}
	case existing.Kind == File:
		logger.Debug("Ignoring repeated listing.", "path", p)
		return
	default:
		logger.Debug("File shares a path with a directory.", "path", p)
	}

	for parent := path.Dir(p); ; parent = path.Dir(parent) {
		switch e, exists := f.sizes[parent]; {
		case !exists:
			f.sizes[parent] = &Entry{Kind: Directory, Path: parent, Size: size}
		case e.Kind == Directory:
			e.Size += size
		}
		logger.Debug("Rolled file size into parent.", "parent", parent, "file", p, "size", size, "total", f.sizes[parent].Size)
		if parent == Root {
			return
		}
	}
}

// join resolves name against cwd. Absolute names replace cwd.
func join(cwd, name string) string {
	if strings.HasPrefix(name, "/") {
		return path.Clean(name)
	}
	return path.Join(cwd, name)
}
