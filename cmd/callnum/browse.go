package main

import (
	"fmt"
	"path/filepath"

	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/browse"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/catalog"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the sorted shelf list interactively",
		Long: `Open a terminal browser over the sorted shelf list. Navigate with
the arrow keys or j/k, press / to filter by title, author or call
number, and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := catalog.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := catalog.Sort(books); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return browse.Run(filepath.Base(args[0]), books)
		},
	}
}
