// Package catalog loads book records from tab-separated shelf lists and
// orders them by Library of Congress call number.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Book is one bibliographic record. Values are immutable once loaded.
type Book struct {
	CallNum string
	Title   string
	Author  string
}

// String renders the formal representation used by the report output,
// e.g. Book("QA76.73.P98 L87 2013", "Learning Python", "Lutz, Mark").
func (b Book) String() string {
	return fmt.Sprintf("Book(%q, %q, %q)", b.CallNum, b.Title, b.Author)
}

// MalformedLineError reports a line that does not split into exactly
// three tab-separated fields.
type MalformedLineError struct {
	File   string
	Line   int // 1-based
	Fields int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: expected 3 tab-separated fields, got %d", e.File, e.Line, e.Fields)
}

// Read loads book records from r, one per line, fields in the order
// title, author, call number, separated by single tabs. Leading and
// trailing whitespace on each line is stripped before splitting. name
// is used in error messages only.
//
// The first malformed line aborts the read with a *MalformedLineError;
// this is a batch tool and a broken input file is a fatal condition.
func Read(r io.Reader, name string) ([]Book, error) {
	var books []Book
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, &MalformedLineError{File: name, Line: lineNum, Fields: len(fields)}
		}
		books = append(books, Book{
			Title:   fields[0],
			Author:  fields[1],
			CallNum: fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return books, nil
}

// ReadFile loads book records from the file at path.
func ReadFile(path string) ([]Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open shelf list: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}
