package goldbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

var (
	market1  = AccountKey{Type: Market, No: 1}
	casting1 = AccountKey{Type: Casting, No: 1}
	facet1   = AccountKey{Type: Faceting, No: 1}
	project1 = AccountKey{Type: Project, No: 1}
	fixing1  = AccountKey{Type: GoldFixing, No: 1}
)

// day is a helper for tests to create dates from const.
func day(s string) Date { return MustParseDate(s) }

// dec is a helper for tests to create a decimal from const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// pair is a helper for tests to create a BalancePair from consts.
func pair(gold, kwd float64) BalancePair { return BalancePair{Gold: G(gold), Kwd: K(kwd)} }

// testBook returns a book with one account of each type, ready to receive
// vouchers.
func testBook(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	opened := day("2025-01-01")
	for _, at := range AccountTypes {
		if _, err := l.CreateAccount(at, at.String()+" one", opened); err != nil {
			t.Fatalf("creating %s account: %v", at, err)
		}
	}
	return l
}

// chequeReceipt returns a market receipt settled by cheque, not yet cashed.
func chequeReceipt(on Date, gold, kwd float64, no string) Receipt {
	r := NewReceipt(on, market1, G(gold), K(kwd), "MVN-"+no)
	r.PaymentMethod = PayCheque
	r.ChequeNo = no
	return r
}
