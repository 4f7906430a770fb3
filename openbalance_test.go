package goldbook

import "testing"

func TestFoldOpen_Patterns(t *testing.T) {
	vs := []Voucher{
		// Matched: a market receipt priced at the day's fixing.
		NewFixingReceipt(day("2025-03-01"), market1, G(2), dec("25"), K(50), "MVN-1"),
		// Matched: a gfv voucher.
		NewFixing(day("2025-03-02"), fixing1, G(1), dec("25"), K(25), "bar fixed"),
		// Ignored: a plain market receipt without a rate.
		NewReceipt(day("2025-03-03"), market1, G(3), K(30), "MVN-2"),
		// Ignored: invoices and alloys never enter the open balance.
		NewInvoice(day("2025-03-04"), market1, G(1), K(10), "MVN-3"),
		NewAlloy(day("2025-03-05"), casting1, G(1), K(5), "alloy"),
	}

	got := FoldOpen(OpenBalance{}, vs)

	if want := pair(1, 25); !got.Pair.Equal(want) {
		t.Errorf("Pair = %v/%v, want %v/%v", got.Pair.Gold, got.Pair.Kwd, want.Gold, want.Kwd)
	}
	if got.FixingReceipts != 1 {
		t.Errorf("FixingReceipts = %d, want 1", got.FixingReceipts)
	}
	if got.Fixings != 1 {
		t.Errorf("Fixings = %d, want 1", got.Fixings)
	}
}

func TestFoldOpen_FixingAmountIsTheMonetaryLeg(t *testing.T) {
	// The receipt's own kwd field is not consulted, only the fixing amount.
	rec := NewFixingReceipt(day("2025-03-01"), market1, G(2), dec("25.5"), K(51), "MVN-1")

	got := FoldOpen(OpenBalance{}, []Voucher{rec})
	if want := pair(2, 51); !got.Pair.Equal(want) {
		t.Errorf("Pair = %v/%v, want %v/%v", got.Pair.Gold, got.Pair.Kwd, want.Gold, want.Kwd)
	}
}

func TestFoldOpen_GfvOnAnyAccount(t *testing.T) {
	// Gfv vouchers subtract regardless of the owning account type.
	for _, owner := range []AccountKey{market1, casting1, fixing1} {
		got := FoldOpen(OpenBalance{}, []Voucher{
			NewFixing(day("2025-03-01"), owner, G(1), dec("20"), K(20), "MVN-1"),
		})
		if want := pair(-1, -20); !got.Pair.Equal(want) {
			t.Errorf("%s: Pair = %v/%v, want %v/%v", owner, got.Pair.Gold, got.Pair.Kwd, want.Gold, want.Kwd)
		}
	}
}

func TestOpenBalance_IncludesInactiveAccounts(t *testing.T) {
	l := testBook(t)
	if err := l.Append(
		NewFixingReceipt(day("2025-03-01"), market1, G(2), dec("25"), K(50), "MVN-1"),
	); err != nil {
		t.Fatal(err)
	}
	if err := l.SetActive(market1, false); err != nil {
		t.Fatal(err)
	}

	report := l.BuildOpenBalance(Range{})
	if report.Closing.FixingReceipts != 1 {
		t.Errorf("FixingReceipts = %d, want 1: deactivation must not hide open-balance vouchers", report.Closing.FixingReceipts)
	}

	// The same deactivation does exclude the account from the type-level
	// trading balance.
	if got := l.OpeningTrading(ScopeType(Market), day("2025-04-01")); !got.IsZero() {
		t.Errorf("type-level trading = %v/%v, want zero after deactivation", got.Gold, got.Kwd)
	}
}
