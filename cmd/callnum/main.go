package main

import (
	"fmt"
	"io"
	"os"

	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/callnum"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/catalog"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/config"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"

	cfgFile    string
	verbose    bool
	noColor    bool
	outputPath string
	asTable    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "callnum [file]",
		Short: "Sort library books by Library of Congress call number",
		Long: `callnum parses Library of Congress call numbers and sorts book
records by them.

Input files hold one record per line, three tab-separated fields:
title, author, call number.

Running callnum with a bare filename sorts it:
  callnum shelf.txt

Subcommands cover the rest:
  callnum check shelf.txt           # report every bad line
  callnum parse "QA76.73.P98 L87"   # show the extracted fields
  callnum watch shelf.txt           # re-sort whenever the file changes
  callnum browse shelf.txt          # interactive browser`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSort(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/callnum/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig honors the --config flag and falls back to the default
// location.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <file>",
		Short: "Sort a shelf list by call number",
		Long: `Sort book records ascending by call number and print them.

The default output is one formal representation per line:
  Book("QA76.73.P98 L87 2013", "Learning Python", "Lutz, Mark")

Any line that does not split into three tab-separated fields, and any
call number that does not match the supported grammar, aborts the sort.
Use 'callnum check' to find every bad record at once.`,
		Args: cobra.ExactArgs(1),
		RunE: runSort,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&asTable, "table", false, "print an aligned table instead of formal representations")

	return cmd
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noColor || !cfg.Output.Color {
		ui.DisableColors()
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return sortFile(args[0], out, asTable || cfg.Output.Table)
}

// sortFile reads, sorts and writes one shelf list.
func sortFile(path string, out io.Writer, table bool) error {
	books, err := catalog.ReadFile(path)
	if err != nil {
		return err
	}
	if err := catalog.Sort(books); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if table {
		tbl := ui.NewTable("CALL NUMBER", "TITLE", "AUTHOR")
		for _, b := range books {
			tbl.AddRow(b.CallNum, b.Title, ui.DisplayName(b.Author))
		}
		tbl.Render(out)
		return nil
	}
	return catalog.Write(out, books)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report every malformed line and invalid call number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if noColor || !cfg.Output.Color {
				ui.DisableColors()
			}
			return checkFile(args[0], os.Stdout)
		},
	}
}

// checkFile validates a shelf list and prints every problem found.
// Unlike sort, a malformed line does not stop the scan: each line is
// checked independently so one broken record cannot hide the rest.
func checkFile(path string, out io.Writer) error {
	records, problems, err := catalog.ScanFile(path)
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintf(out, "%s %d records, all call numbers valid\n", ui.Success("✓"), records)
		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(out, "%s %v\n", ui.Error("✗"), p)
	}
	return fmt.Errorf("%d problems found", len(problems))
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <callnum>...",
		Short: "Show the fields extracted from call numbers",
		Long: `Parse call numbers given as arguments and print the extracted
comparison fields. Useful for checking how a label will sort.

Example:
  callnum parse "QA76.73.C15 B73 2019"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				cn, err := callnum.Parse(raw)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", ui.CallNum(raw))
				fmt.Printf("  class:   %s\n", cn.Class)
				fmt.Printf("  subject: %s\n", cn.Subject)
				fmt.Printf("  cutter:  %s\n", cn.Cutter)
				if cn.HasYear() {
					fmt.Printf("  year:    %s\n", cn.Year)
				} else {
					fmt.Printf("  year:    %s\n", ui.Dim("(none)"))
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("callnum %s\n", version)
		},
	}
}
