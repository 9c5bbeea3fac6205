package day07

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// lineKind tags one line of the transcript.
type lineKind int

const (
	changeDir lineKind = iota
	changeDirUp
	list
	dirListing
	fileListing
)

// line is one tokenized transcript line.
type line struct {
	kind lineKind
	name string
	size int64
}

// tokenize classifies a single non-blank transcript line. n is the 1-based
// line number used in error reports.
func tokenize(n int, raw string) (line, error) {
	text := strings.TrimSpace(raw)

	if cmd, ok := strings.CutPrefix(text, "$"); ok {
		cmd = strings.TrimSpace(cmd)
		switch {
		case cmd == "ls":
			return line{kind: list}, nil
		case strings.HasPrefix(cmd, "cd "):
			name := strings.TrimSpace(strings.TrimPrefix(cmd, "cd "))
			switch name {
			case "":
				return line{}, puzzle.Malformed(n, raw, "cd without a target")
			case "..":
				return line{kind: changeDirUp}, nil
			}
			return line{kind: changeDir, name: name}, nil
		}
		return line{}, puzzle.Malformed(n, raw, "unknown command")
	}

	if name, ok := strings.CutPrefix(text, "dir "); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return line{}, puzzle.Malformed(n, raw, "directory listing without a name")
		}
		return line{kind: dirListing, name: name}, nil
	}

	sizeField, name, ok := strings.Cut(text, " ")
	if !ok || strings.TrimSpace(name) == "" {
		return line{}, puzzle.Malformed(n, raw, "unrecognized listing")
	}
	size, err := strconv.ParseInt(sizeField, 10, 64)
	if err != nil || size < 0 {
		return line{}, puzzle.Malformed(n, sizeField, "invalid file size")
	}
	return line{kind: fileListing, name: strings.TrimSpace(name), size: size}, nil
}
