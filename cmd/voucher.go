package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/alwazzan/goldbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// voucherFlags are the flags shared by every voucher subcommand.
type voucherFlags struct {
	date    string
	account string
	gold    float64
	kwd     float64
	ref     string
}

func (c *voucherFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", goldbook.Today().String(), "Voucher date. See the user manual for supported date formats.")
	f.StringVar(&c.account, "a", "", "Account, like market-3.")
	f.Float64Var(&c.gold, "g", 0, "Gold weight in grams")
	f.Float64Var(&c.kwd, "k", 0, "Amount in KWD")
	f.StringVar(&c.ref, "r", "", "MVN reference on a market account, free-text description elsewhere")
}

// parse validates the shared flags and returns the voucher building blocks.
func (c *voucherFlags) parse(f *flag.FlagSet) (on goldbook.Date, owner goldbook.AccountKey, err error) {
	if c.account == "" {
		f.Usage()
		return on, owner, fmt.Errorf("-a <account> is required")
	}
	owner, err = goldbook.ParseAccountKey(c.account)
	if err != nil {
		return on, owner, err
	}
	on, err = goldbook.ParseDate(c.date)
	if err != nil {
		return on, owner, fmt.Errorf("error parsing date: %w", err)
	}
	return on, owner, nil
}

// --- Invoice Command ---

type invCmd struct{ voucherFlags }

func (*invCmd) Name() string     { return "inv" }
func (*invCmd) Synopsis() string { return "record an invoice, goods leaving the business" }
func (*invCmd) Usage() string {
	return `gbk inv -a <account> -g <gold> -k <kwd> [-d <date>] [-r <ref>]

  Records an invoice. The invoice debits the account and takes gold out of
  the locker.
`
}

func (c *invCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *invCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, owner, err := c.parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendVoucher(goldbook.NewInvoice(on, owner, goldbook.G(c.gold), goldbook.K(c.kwd), c.ref))
}

// --- Receipt Command ---

type recCmd struct {
	voucherFlags
	rate   float64
	fixing float64
	cheque string
}

func (*recCmd) Name() string     { return "rec" }
func (*recCmd) Synopsis() string { return "record a receipt, gold or money coming back" }
func (*recCmd) Usage() string {
	return `gbk rec -a <account> -g <gold> [-k <kwd>] [-d <date>] [-r <ref>] [-rate <rate> -f <amount>] [-cheque <no>]

  Records a receipt, crediting the account. A market receipt priced at the
  day's fixing takes -rate and -f; a cheque receipt takes -cheque and is
  deferred from the locker until cashed.
`
}

func (c *recCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Float64Var(&c.rate, "rate", 0, "Gold rate per gram when fixing-priced. Use 'gbk rate' for the current quote.")
	f.Float64Var(&c.fixing, "f", 0, "Fixing amount in KWD, the monetary leg of a fixing-priced receipt")
	f.StringVar(&c.cheque, "cheque", "", "Cheque number, when settled by cheque")
}

func (c *recCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, owner, err := c.parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var rec goldbook.Receipt
	if c.rate > 0 {
		rec = goldbook.NewFixingReceipt(on, owner, goldbook.G(c.gold), decimal.NewFromFloat(c.rate), goldbook.K(c.fixing), c.ref)
	} else {
		rec = goldbook.NewReceipt(on, owner, goldbook.G(c.gold), goldbook.K(c.kwd), c.ref)
	}
	if c.cheque != "" {
		rec.PaymentMethod = goldbook.PayCheque
		rec.ChequeNo = c.cheque
	}
	return appendVoucher(rec)
}

// --- Gold Fixing Command ---

type gfvCmd struct {
	voucherFlags
	rate float64
}

func (*gfvCmd) Name() string     { return "gfv" }
func (*gfvCmd) Synopsis() string { return "record a gold fixing voucher" }
func (*gfvCmd) Usage() string {
	return `gbk gfv -a <account> -g <gold> -rate <rate> -k <kwd> [-d <date>] [-r <ref>]

  Records gold priced out at a fixed rate. The voucher moves the trading and
  open balances but never the locker.
`
}

func (c *gfvCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Float64Var(&c.rate, "rate", 0, "Gold rate per gram. Use 'gbk rate' for the current quote.")
}

func (c *gfvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, owner, err := c.parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendVoucher(goldbook.NewFixing(on, owner, goldbook.G(c.gold), decimal.NewFromFloat(c.rate), goldbook.K(c.kwd), c.ref))
}

// --- Alloy Command ---

type alloyCmd struct{ voucherFlags }

func (*alloyCmd) Name() string     { return "alloy" }
func (*alloyCmd) Synopsis() string { return "record an alloy transaction" }
func (*alloyCmd) Usage() string {
	return `gbk alloy -a <account> -g <gold> -k <kwd> [-d <date>] [-r <ref>]

  Records an alloy transaction. It trades like an invoice but never moves
  physical stock.
`
}

func (c *alloyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *alloyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, owner, err := c.parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendVoucher(goldbook.NewAlloy(on, owner, goldbook.G(c.gold), goldbook.K(c.kwd), c.ref))
}

// --- Cash Cheque Command ---

type cashChequeCmd struct{}

func (*cashChequeCmd) Name() string     { return "cash-cheque" }
func (*cashChequeCmd) Synopsis() string { return "mark a cheque receipt as cashed" }
func (*cashChequeCmd) Usage() string {
	return `gbk cash-cheque <voucher-no>

  Marks a cheque receipt as cashed. From then on its gold counts as physical
  stock; recomputed locker balances include it, which is expected.
`
}

func (c *cashChequeCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashChequeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one voucher number argument.")
		return subcommands.ExitUsageError
	}
	seq, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid voucher number %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.MarkCashed(seq); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cheque on voucher %d marked cashed\n", seq)
	return subcommands.ExitSuccess
}
