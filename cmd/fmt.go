package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "formats the book file into a canonical form" }
func (*fmtCmd) Usage() string {
	return `gbk fmt

  Rewrites the book file in canonical form: accounts first, then vouchers in
  date order, one JSON object per line.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Book file '%s' has been formatted.\n", *bookFile)
	return subcommands.ExitSuccess
}
