package renderer

import (
	"fmt"
	"strings"

	"github.com/alwazzan/goldbook"
)

// StatementMarkdown renders a paginated ledger statement. Every page becomes
// its own section so the printable layout is visible on screen: the opening
// row appears only on the first page, the closing totals only on the last.
func StatementMarkdown(title string, s *goldbook.Statement) string {
	r := &statementRenderer{Builder: &strings.Builder{}, statement: s}

	r.Printf("# Ledger Statement: %s\n\n", title)
	r.renderWindow()

	if len(s.Pages) == 0 {
		r.Printf("No vouchers in this window.\n")
		return r.String()
	}

	for _, page := range s.Pages {
		r.renderPage(page)
	}
	return r.String()
}

// statementRenderer formats a statement into a markdown string.
type statementRenderer struct {
	*strings.Builder
	statement *goldbook.Statement
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *statementRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *statementRenderer) renderWindow() {
	s := r.statement
	from, to := "beginning", "today"
	if !s.Range.From.IsZero() {
		from = s.Range.From.String()
	}
	if !s.Range.To.IsZero() {
		to = s.Range.To.String()
	}
	r.Printf("%s, from %s to %s, %d vouchers on %d pages.\n\n", s.Scope, from, to, s.Vouchers, len(s.Pages))
}

func (r *statementRenderer) renderPage(page goldbook.Page) {
	s := r.statement
	r.Printf("## Page %d of %d\n\n", page.Number, len(s.Pages))
	r.Printf("| Date | No | Kind | Reference | Gold | KWD | Gold Balance | KWD Balance | Locker |\n")
	r.Printf("|:---|---:|:---|:---|---:|---:|---:|---:|---:|\n")

	if page.Opening {
		r.Printf("| %s | | | *Opening Balance* | | | %s | %s | %s |\n",
			s.Range.From, SignedGold(s.Opening.Gold), SignedMoney(s.Opening.Kwd), SignedGold(s.OpeningLocker))
	}

	for _, e := range page.Entries {
		locker := ""
		if e.LockerAffected {
			locker = SignedGold(e.LockerGold)
		}
		r.Printf("| %s | %d | %s | %s | %s | %s | %s | %s | %s |\n",
			e.Voucher.When(), e.Voucher.Seq(), strings.ToUpper(string(e.Voucher.What())),
			e.Voucher.Reference(),
			e.Voucher.GoldWeight(), e.Voucher.Amount(),
			SignedGold(e.GoldBalance), SignedMoney(e.KwdBalance), locker)
	}

	if page.Closing {
		r.Printf("| | | | *Closing Balance* | %s | %s | %s | %s | %s |\n",
			SignedGold(s.PeriodGold), SignedMoney(s.PeriodKwd),
			SignedGold(s.Closing.Gold), SignedMoney(s.Closing.Kwd), SignedGold(s.ClosingLocker))
	}
	r.Printf("\n")
}
