// Package cmd implements the CLI application to manage a gold book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/alwazzan/goldbook"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&setActiveCmd{name: "deactivate", active: false}, "accounts")
	c.Register(&setActiveCmd{name: "reactivate", active: true}, "accounts")

	c.Register(&invCmd{}, "vouchers")
	c.Register(&recCmd{}, "vouchers")
	c.Register(&gfvCmd{}, "vouchers")
	c.Register(&alloyCmd{}, "vouchers")
	c.Register(&cashChequeCmd{}, "vouchers")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&lockerCmd{}, "reports")
	c.Register(&openBalanceCmd{}, "reports")
	c.Register(&statementCmd{}, "reports")

	c.Register(&rateCmd{}, "tools")
	c.Register(&fmtCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "book.jsonl", "Path to the book file containing accounts and vouchers (JSONL format)")

// DecodeBook reads the book from the app book file. A missing file yields an
// empty book.
func DecodeBook() (*goldbook.Ledger, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		return goldbook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return goldbook.DecodeLedger(f)
}

// SaveBook rewrites the whole book file in canonical form. Voucher sequence
// numbers are assigned by the book, so a plain line append after a mutation
// would lose them.
func SaveBook(ledger *goldbook.Ledger) error {
	f, err := os.OpenFile(*bookFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", *bookFile, err)
	}
	defer f.Close()
	return goldbook.EncodeLedger(f, ledger)
}

// appendVoucher validates the voucher against the book, appends it and saves.
func appendVoucher(v goldbook.Voucher) subcommands.ExitStatus {
	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error appending voucher: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %s voucher to %s\n", v.What(), *bookFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown report for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
