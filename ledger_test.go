package goldbook

import (
	"strings"
	"testing"
)

func TestCreateAccount_DenseNumbering(t *testing.T) {
	l := NewLedger()
	on := day("2025-01-01")

	a, _ := l.CreateAccount(Market, "first", on)
	b, _ := l.CreateAccount(Market, "second", on)
	c, _ := l.CreateAccount(Casting, "caster", on)

	if a.No != 1 || b.No != 2 {
		t.Errorf("market numbers = %d, %d, want 1, 2", a.No, b.No)
	}
	// Numbering is dense per type, not global.
	if c.No != 1 {
		t.Errorf("casting number = %d, want 1", c.No)
	}
	if a.Key().String() != "market-1" || c.Key().String() != "casting-1" {
		t.Errorf("keys = %s, %s", a.Key(), c.Key())
	}
	if !a.Active {
		t.Error("a new account must start active")
	}
}

func TestCreateAccount_MissingName(t *testing.T) {
	l := NewLedger()
	if _, err := l.CreateAccount(Market, "", day("2025-01-01")); err == nil {
		t.Error("expected an error for a missing name")
	}
}

func TestAppend_KeepsChronologicalOrder(t *testing.T) {
	l := testBook(t)
	// Append out of order; the record must come back sorted, same-day
	// vouchers keeping insertion order.
	err := l.Append(
		NewInvoice(day("2025-03-10"), market1, G(1), K(1), "MVN-3"),
		NewInvoice(day("2025-03-01"), market1, G(1), K(1), "MVN-1"),
		NewInvoice(day("2025-03-10"), market1, G(1), K(1), "MVN-4"),
		NewInvoice(day("2025-03-05"), market1, G(1), K(1), "MVN-2"),
	)
	if err != nil {
		t.Fatal(err)
	}

	var refs []string
	for _, v := range l.Vouchers(AcceptAll) {
		refs = append(refs, v.Reference())
	}
	if got, want := strings.Join(refs, ","), "MVN-1,MVN-2,MVN-3,MVN-4"; got != want {
		t.Errorf("record order = %s, want %s", got, want)
	}

	if got := l.OldestVoucherDate(); got != day("2025-03-01") {
		t.Errorf("OldestVoucherDate = %s", got)
	}
	if got := l.NewestVoucherDate(); got != day("2025-03-10") {
		t.Errorf("NewestVoucherDate = %s", got)
	}
}

func TestAppend_AssignsSequences(t *testing.T) {
	l := testBook(t)
	if err := l.Append(
		NewInvoice(day("2025-03-02"), market1, G(1), K(1), "MVN-1"),
		NewInvoice(day("2025-03-01"), market1, G(1), K(1), "MVN-2"),
	); err != nil {
		t.Fatal(err)
	}

	// Sequences follow append order, not date order.
	if v := l.Voucher(1); v == nil || v.Reference() != "MVN-1" {
		t.Errorf("Voucher(1) = %v", v)
	}
	if v := l.Voucher(2); v == nil || v.Reference() != "MVN-2" {
		t.Errorf("Voucher(2) = %v", v)
	}
	if v := l.Voucher(99); v != nil {
		t.Errorf("Voucher(99) = %v, want nil", v)
	}
}

func TestAppend_RejectsInvalidVouchers(t *testing.T) {
	l := testBook(t)

	testCases := []struct {
		name string
		v    Voucher
	}{
		{"unknown account", NewInvoice(day("2025-03-01"), AccountKey{Type: Market, No: 9}, G(1), K(1), "MVN-1")},
		{"market voucher without mvn", NewInvoice(day("2025-03-01"), market1, G(1), K(1), "")},
		{"casting voucher without description", NewInvoice(day("2025-03-01"), casting1, G(1), K(1), "")},
		{"cheque number on a cash receipt", func() Voucher {
			r := NewReceipt(day("2025-03-01"), market1, G(1), K(1), "MVN-1")
			r.PaymentMethod = PayCash
			r.ChequeNo = "12"
			return r
		}()},
		{"fixing amount without a rate", func() Voucher {
			r := NewReceipt(day("2025-03-01"), market1, G(1), K(1), "MVN-1")
			r.FixingAmount = K(10)
			return r
		}()},
		{"gfv without a rate", NewFixing(day("2025-03-01"), fixing1, G(1), dec("0"), K(1), "bar")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := l.Append(tc.v); err == nil {
				t.Error("expected a validation error")
			}
			// Nothing may be appended on failure.
			if got := len(l.VouchersIn(ScopeAll(), Range{})); got != 0 {
				t.Fatalf("record holds %d vouchers after a rejected append", got)
			}
		})
	}
}

func TestReplaceVoucher(t *testing.T) {
	l := testBook(t)
	if err := l.Append(NewInvoice(day("2025-03-01"), market1, G(1), K(10), "MVN-1")); err != nil {
		t.Fatal(err)
	}

	if err := l.ReplaceVoucher(1, NewInvoice(day("2025-03-01"), market1, G(2), K(10), "MVN-1b")); err != nil {
		t.Fatal(err)
	}
	if got := l.Voucher(1).Reference(); got != "MVN-1b" {
		t.Errorf("reference = %s, want MVN-1b", got)
	}
	// The next fold reflects the change.
	if got := l.OpeningTrading(ScopeAccount(market1), day("2025-04-01")); !got.Equal(pair(2, 10)) {
		t.Errorf("balance = %v/%v after replacement", got.Gold, got.Kwd)
	}

	if err := l.ReplaceVoucher(7, NewInvoice(day("2025-03-01"), market1, G(1), K(1), "MVN-x")); err == nil {
		t.Error("expected an error for an unknown sequence")
	}
	if err := l.ReplaceVoucher(1, NewInvoice(day("2025-03-01"), market1, G(1), K(1), "")); err == nil {
		t.Error("expected a validation error")
	}
}

func TestDeleteVoucher(t *testing.T) {
	l := testBook(t)
	if err := l.Append(
		NewInvoice(day("2025-03-01"), market1, G(1), K(10), "MVN-1"),
		NewInvoice(day("2025-03-02"), market1, G(2), K(20), "MVN-2"),
	); err != nil {
		t.Fatal(err)
	}

	if err := l.DeleteVoucher(1); err != nil {
		t.Fatal(err)
	}
	if got := l.OpeningTrading(ScopeAccount(market1), day("2025-04-01")); !got.Equal(pair(2, 20)) {
		t.Errorf("balance = %v/%v after deletion", got.Gold, got.Kwd)
	}
	if err := l.DeleteVoucher(1); err == nil {
		t.Error("expected an error deleting twice")
	}
}

func TestMarkCashed(t *testing.T) {
	l := testBook(t)
	if err := l.Append(
		chequeReceipt(day("2025-03-01"), 2, 60, "736"),
		NewReceipt(day("2025-03-02"), market1, G(1), K(10), "MVN-2"),
		NewInvoice(day("2025-03-03"), market1, G(1), K(10), "MVN-3"),
	); err != nil {
		t.Fatal(err)
	}

	// Before cashing, the cheque gold is not stock.
	if got := l.OpeningLocker(ScopeAccount(market1), day("2025-04-01")); got.String() != "0.000" {
		t.Errorf("locker = %s before cashing, want 0.000", got)
	}

	if err := l.MarkCashed(1); err != nil {
		t.Fatal(err)
	}
	if got := l.OpeningLocker(ScopeAccount(market1), day("2025-04-01")); got.String() != "2.000" {
		t.Errorf("locker = %s after cashing, want 2.000", got)
	}

	testCases := []struct {
		name string
		seq  int
	}{
		{"already cashed", 1},
		{"not a cheque receipt", 2},
		{"not a receipt", 3},
		{"unknown sequence", 9},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := l.MarkCashed(tc.seq); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestVoucherFilters(t *testing.T) {
	l := seededBook(t)

	count := func(filters ...func(Voucher) bool) int {
		n := 0
		for range l.Vouchers(filters...) {
			n++
		}
		return n
	}

	if got := count(ByKind(KindInvoice)); got != 3 {
		t.Errorf("invoices = %d, want 3", got)
	}
	if got := count(ByAccountType(Casting)); got != 3 {
		t.Errorf("casting vouchers = %d, want 3", got)
	}
	if got := count(ByOwner(fixing1)); got != 2 {
		t.Errorf("fixing-1 vouchers = %d, want 2", got)
	}
	// Filters are additive: a voucher passes if any filter accepts it.
	if got := count(ByKind(KindAlloy), ByKind(KindFixing)); got != 2 {
		t.Errorf("alloy or gfv = %d, want 2", got)
	}
}
