package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/callnum"
)

// Scan validates every line of a shelf list and reports all problems,
// not just the first: malformed lines and call numbers that do not
// match the grammar, each with its 1-based line number. Lines are
// independent, so a malformed line does not hide problems after it.
// records counts the well-formed lines. No problems means the file
// would load and sort cleanly.
func Scan(r io.Reader, name string) (records int, problems []error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			problems = append(problems, &MalformedLineError{File: name, Line: lineNum, Fields: len(fields)})
			continue
		}
		records++
		if _, err := callnum.Parse(fields[2]); err != nil {
			problems = append(problems, fmt.Errorf("%s:%d: %w", name, lineNum, err))
		}
	}
	if err := scanner.Err(); err != nil {
		problems = append(problems, fmt.Errorf("reading %s: %w", name, err))
	}
	return records, problems
}

// ScanFile validates the shelf list at path. The returned error covers
// opening the file only; validation problems are in the slice.
func ScanFile(path string) (int, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot open shelf list: %w", err)
	}
	defer f.Close()
	records, problems := Scan(f, path)
	return records, problems, nil
}
