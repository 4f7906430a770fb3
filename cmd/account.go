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

// addAccountCmd holds the flags for the 'add-account' subcommand.
type addAccountCmd struct {
	accountType string
	name        string
	date        string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account in the book" }
func (*addAccountCmd) Usage() string {
	return `gbk add-account -t <type> -n <name> [-d <date>]

  Creates an account of the given type. The account number is the next free
  number of that type.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "market", "Account type (market, casting, faceting, project, fixing).")
	f.StringVar(&c.name, "n", "", "Account holder name.")
	f.StringVar(&c.date, "d", goldbook.Today().String(), "Opening date. See the user manual for supported date formats.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n <name> is required.")
		return subcommands.ExitUsageError
	}
	t, err := goldbook.ParseAccountType(c.accountType)
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
	account, err := ledger.CreateAccount(t, c.name, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %s %q\n", account.Key(), account.Name)
	return subcommands.ExitSuccess
}

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct {
	accountType string
	all         bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts in the book" }
func (*accountsCmd) Usage() string {
	return `gbk accounts [-t <type>] [-all]

  Lists accounts, sorted by type and number. Inactive accounts are hidden
  unless -all is given.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "", "Only list accounts of this type.")
	f.BoolVar(&c.all, "all", false, "Include deactivated accounts.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var accounts []*goldbook.Account
	if c.accountType != "" {
		t, err := goldbook.ParseAccountType(c.accountType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		accounts = ledger.AccountsOf(t, !c.all)
	} else {
		for _, a := range ledger.AllAccounts() {
			if c.all || a.Active {
				accounts = append(accounts, a)
			}
		}
	}

	printMarkdown(renderer.AccountsMarkdown(accounts))
	return subcommands.ExitSuccess
}

// setActiveCmd implements both 'deactivate' and 'reactivate'.
type setActiveCmd struct {
	name   string
	active bool
}

func (c *setActiveCmd) Name() string { return c.name }
func (c *setActiveCmd) Synopsis() string {
	if c.active {
		return "bring an account back into type-level balances"
	}
	return "exclude an account from type-level balances"
}
func (c *setActiveCmd) Usage() string {
	return fmt.Sprintf(`gbk %s <account>

  Flips the account's active flag. Inactive accounts are skipped by type-level
  trading and locker aggregates; their vouchers still count in the open
  balance and in single-account statements.
`, c.name)
}

func (c *setActiveCmd) SetFlags(f *flag.FlagSet) {}

func (c *setActiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected one account argument, like market-3.\n")
		return subcommands.ExitUsageError
	}
	key, err := goldbook.ParseAccountKey(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.SetActive(key, c.active); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	state := "inactive"
	if c.active {
		state = "active"
	}
	fmt.Printf("Account %s is now %s\n", key, state)
	return subcommands.ExitSuccess
}
