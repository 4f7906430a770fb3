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

// scopeFlags are the flags selecting a balance scope: one account, one
// account type, or the whole book.
type scopeFlags struct {
	account     string
	accountType string
}

func (c *scopeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Report on a single account, like market-3.")
	f.StringVar(&c.accountType, "t", "", "Report on all active accounts of a type. Ignored when -a is given.")
}

func (c *scopeFlags) scope() (goldbook.Scope, error) {
	if c.account != "" {
		key, err := goldbook.ParseAccountKey(c.account)
		if err != nil {
			return goldbook.Scope{}, err
		}
		return goldbook.ScopeAccount(key), nil
	}
	if c.accountType != "" {
		t, err := goldbook.ParseAccountType(c.accountType)
		if err != nil {
			return goldbook.Scope{}, err
		}
		return goldbook.ScopeType(t), nil
	}
	return goldbook.ScopeAll(), nil
}

// --- Balance Command ---

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	scopeFlags
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the trading balance of a scope" }
func (*balanceCmd) Usage() string {
	return `gbk balance [-a <account> | -t <type>] [-d <date>]

  Displays the gold and KWD trading balance of a scope on a given date,
  along with the locker stock.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.date, "d", goldbook.Today().String(), "Date for the balance report.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scope, err := c.scope()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := goldbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The balance on a date includes that date, so replay up to the next day.
	pair := ledger.OpeningTrading(scope, on.Add(1))
	locker := ledger.OpeningLocker(scope, on.Add(1))

	printMarkdown(renderer.BalanceMarkdown(scope.String(), on, pair, locker))
	return subcommands.ExitSuccess
}

// --- Locker Command ---

type lockerCmd struct {
	scopeFlags
	date string
}

func (*lockerCmd) Name() string     { return "locker" }
func (*lockerCmd) Synopsis() string { return "display the physical gold stock of a scope" }
func (*lockerCmd) Usage() string {
	return `gbk locker [-a <account> | -t <type>] [-d <date>]

  Displays the locker balance of a scope on a given date. Uncashed cheque
  receipts are not yet counted as stock.
`
}

func (c *lockerCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.date, "d", goldbook.Today().String(), "Date for the locker report.")
}

func (c *lockerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scope, err := c.scope()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := goldbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	locker := ledger.OpeningLocker(scope, on.Add(1))
	printMarkdown(renderer.LockerMarkdown(scope.String(), on, locker))
	return subcommands.ExitSuccess
}

// --- Open Balance Command ---

type openBalanceCmd struct {
	start string
	date  string
}

func (*openBalanceCmd) Name() string     { return "open-balance" }
func (*openBalanceCmd) Synopsis() string { return "display the cross-account open balance" }
func (*openBalanceCmd) Usage() string {
	return `gbk open-balance [-s <start_date>] [-d <end_date>]

  Displays the open-balance report over a window. The scope is always the
  whole book, inactive accounts included.
`
}

func (c *openBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date of the window. Defaults to the beginning of the book.")
	f.StringVar(&c.date, "d", "", "The end date of the window. Defaults to today.")
}

func (c *openBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseWindow(c.start, c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OpenBalanceMarkdown(ledger.BuildOpenBalance(r)))
	return subcommands.ExitSuccess
}

// parseWindow parses the -s and -d flag values into a Range. An empty start
// means an unbounded beginning; an empty end defaults to today.
func parseWindow(start, end string) (goldbook.Range, subcommands.ExitStatus) {
	var from, to goldbook.Date
	var err error
	if start != "" {
		from, err = goldbook.ParseDate(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return goldbook.Range{}, subcommands.ExitUsageError
		}
	}
	if end == "" {
		to = goldbook.Today()
	} else {
		to, err = goldbook.ParseDate(end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return goldbook.Range{}, subcommands.ExitUsageError
		}
	}
	return goldbook.NewRange(from, to), subcommands.ExitSuccess
}
