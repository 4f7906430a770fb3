package renderer

import (
	"github.com/alwazzan/goldbook"
)

// balanceView is the template data for a scope balance report.
type balanceView struct {
	Title  string
	AsOf   string
	Gold   string
	Kwd    string
	Locker string
}

// BalanceMarkdown renders the trading and locker balance of a scope on a date.
func BalanceMarkdown(title string, on goldbook.Date, pair goldbook.BalancePair, locker goldbook.Gold) string {
	return renderTemplate("balance", "balance.md", nil, balanceView{
		Title:  title,
		AsOf:   on.String(),
		Gold:   SignedGold(pair.Gold),
		Kwd:    SignedMoney(pair.Kwd),
		Locker: SignedGold(locker),
	})
}

// lockerView is the template data for the locker stock report.
type lockerView struct {
	Title  string
	AsOf   string
	Locker string
}

// LockerMarkdown renders the physical gold stock of a scope on a date.
func LockerMarkdown(title string, on goldbook.Date, locker goldbook.Gold) string {
	return renderTemplate("locker", "locker.md", nil, lockerView{
		Title:  title,
		AsOf:   on.String(),
		Locker: SignedGold(locker),
	})
}

// openBalanceView is the template data for the open-balance report.
type openBalanceView struct {
	From, To       string
	OpeningGold    string
	OpeningKwd     string
	ClosingGold    string
	ClosingKwd     string
	FixingReceipts int
	Fixings        int
}

// OpenBalanceMarkdown renders the cross-account open-balance report.
func OpenBalanceMarkdown(r *goldbook.OpenBalanceReport) string {
	from, to := "beginning", "today"
	if !r.Range.From.IsZero() {
		from = r.Range.From.String()
	}
	if !r.Range.To.IsZero() {
		to = r.Range.To.String()
	}
	return renderTemplate("openBalance", "open_balance.md", nil, openBalanceView{
		From:           from,
		To:             to,
		OpeningGold:    SignedGold(r.Opening.Pair.Gold),
		OpeningKwd:     SignedMoney(r.Opening.Pair.Kwd),
		ClosingGold:    SignedGold(r.Closing.Pair.Gold),
		ClosingKwd:     SignedMoney(r.Closing.Pair.Kwd),
		FixingReceipts: r.Closing.FixingReceipts,
		Fixings:        r.Closing.Fixings,
	})
}

// accountView is a single row of the accounts listing.
type accountView struct {
	Key    string
	Name   string
	Opened string
	Status string
}

// AccountsMarkdown renders the account registry as a table.
func AccountsMarkdown(accounts []*goldbook.Account) string {
	rows := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		status := "active"
		if !a.Active {
			status = "inactive"
		}
		rows = append(rows, accountView{
			Key:    a.Key().String(),
			Name:   a.Name,
			Opened: a.Opened.String(),
			Status: status,
		})
	}
	return renderTemplate("accounts", "accounts.md", nil, rows)
}
