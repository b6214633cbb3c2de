package fragment

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrRead wraps failures to load a source file.
var ErrRead = errors.New("read source file")

// File holds one loaded source file, decomposed into lines once. Fragments
// derived from it share the File by pointer and never copy line data.
type File struct {
	Path    string
	Lines   []string // raw content lines
	Display []string // display-ready lines (tabs expanded)
}

// Fragment is a contiguous, inclusive line range [FirstLine, LastLine] into a
// File. It is the unit of scoring.
type Fragment struct {
	File      *File
	FirstLine int
	LastLine  int
}

const tabWidth = 4

// Load reads a file and splits it into lines. A trailing newline does not
// produce an empty final line.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	text := strings.TrimSuffix(string(content), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	display := make([]string, len(lines))
	for i, line := range lines {
		display[i] = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	}
	return &File{Path: path, Lines: lines, Display: display}, nil
}

// Window slices the file into overlapping fragments. Lines are grouped into
// consecutive blocks of linesPerBlock lines; one fragment starts at every
// block boundary and spans up to blocksPerFragment blocks, truncated at the
// end of the file. Adjacent fragments therefore advance one block at a time
// and share blocksPerFragment-1 blocks.
func (f *File) Window(linesPerBlock, blocksPerFragment int) []Fragment {
	if linesPerBlock <= 0 || blocksPerFragment <= 0 {
		return nil
	}
	total := len(f.Lines)
	if total == 0 {
		return nil
	}
	span := linesPerBlock * blocksPerFragment
	var frags []Fragment
	for start := 0; start < total; start += linesPerBlock {
		last := start + span - 1
		if last > total-1 {
			last = total - 1
		}
		frags = append(frags, Fragment{File: f, FirstLine: start, LastLine: last})
	}
	return frags
}

// LoadAll loads every path and windows each file in order.
func LoadAll(paths []string, linesPerBlock, blocksPerFragment int) ([]Fragment, error) {
	var frags []Fragment
	for _, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f.Window(linesPerBlock, blocksPerFragment)...)
	}
	return frags, nil
}

// Text joins the fragment's raw lines for scoring.
func (fr Fragment) Text() string {
	return strings.Join(fr.File.Lines[fr.FirstLine:fr.LastLine+1], "\n")
}

// Styled returns the fragment's display lines as a shared slice of the
// File's pre-rendered content.
func (fr Fragment) Styled() []string {
	return fr.File.Display[fr.FirstLine : fr.LastLine+1]
}

// Location renders the human-readable position, e.g. "main.go:42".
func (fr Fragment) Location() string {
	return fmt.Sprintf("%s:%d", fr.File.Path, fr.FirstLine)
}
