package catalog

import (
	"fmt"
	"io"
)

// Write prints one formal representation per book to w, in slice order.
// Call Sort first for shelf order.
func Write(w io.Writer, books []Book) error {
	for _, b := range books {
		if _, err := fmt.Fprintln(w, b); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
