package catalog

import (
	"fmt"
	"sort"

	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/callnum"
)

type shelfEntry struct {
	book Book
	key  callnum.CallNumber
}

// Sort orders books in place, ascending by call number.
//
// Every call number is parsed up front; the first one that does not
// match the grammar aborts the sort with an error naming the record. A
// partially ordered shelf list is worse than none, and the ordering is
// only total when every record parses. Use Scan to find all bad
// records in one pass.
func Sort(books []Book) error {
	entries := make([]shelfEntry, len(books))
	for i, b := range books {
		key, err := callnum.Parse(b.CallNum)
		if err != nil {
			return fmt.Errorf("record %d (%q): %w", i+1, b.Title, err)
		}
		entries[i] = shelfEntry{book: b, key: key}
	}

	// Stable keeps the relative order of records whose keys compare
	// equal, such as two year-less copies of the same call number.
	sort.SliceStable(entries, func(i, j int) bool {
		return callnum.Less(entries[i].key, entries[j].key)
	})

	for i, e := range entries {
		books[i] = e.book
	}
	return nil
}
