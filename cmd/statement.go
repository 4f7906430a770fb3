package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alwazzan/goldbook"
	"github.com/alwazzan/goldbook/renderer"
	"github.com/google/subcommands"
)

// statementCmd holds the flags for the 'statement' subcommand.
type statementCmd struct {
	scopeFlags
	start     string
	date      string
	rows      int
	noOpening bool
	noClosing bool
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "display a paginated ledger statement" }
func (*statementCmd) Usage() string {
	return `gbk statement [-a <account> | -t <type>] [-s <start_date>] [-d <end_date>] [-rows <n>]

  Displays the vouchers of a scope over a window, tiled onto fixed-capacity
  pages with running balances. The opening balance row is replayed from the
  history before the window.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.start, "s", "", "The start date of the window. Defaults to the beginning of the book.")
	f.StringVar(&c.date, "d", "", "The end date of the window. Defaults to today.")
	f.IntVar(&c.rows, "rows", 18, "Rows per page, including the synthetic opening and closing rows.")
	f.BoolVar(&c.noOpening, "no-opening", false, "Omit the opening balance row.")
	f.BoolVar(&c.noClosing, "no-closing", false, "Omit the closing totals row.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scope, err := c.scope()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, status := parseWindow(c.start, c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	statement, err := ledger.BuildStatement(scope, r, goldbook.StatementOptions{
		RowsPerPage: c.rows,
		OpeningRow:  !c.noOpening,
		ClosingRow:  !c.noClosing,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building statement: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StatementMarkdown(scope.String(), statement))
	return subcommands.ExitSuccess
}
