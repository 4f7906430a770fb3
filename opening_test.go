package goldbook

import "testing"

// seededBook returns a book with a few months of mixed activity across
// accounts, for replay tests.
func seededBook(t *testing.T) *Ledger {
	t.Helper()
	l := testBook(t)
	err := l.Append(
		NewReceipt(day("2025-01-10"), fixing1, G(50), K(0), "opening stock"),
		NewInvoice(day("2025-01-15"), market1, G(5), K(120), "MVN-1"),
		chequeReceipt(day("2025-01-20"), 2, 60, "381"),
		NewInvoice(day("2025-02-01"), casting1, G(10), K(0), "to casting"),
		NewFixingReceipt(day("2025-02-10"), market1, G(3), dec("25"), K(75), "MVN-2"),
		NewReceipt(day("2025-02-15"), casting1, G(9.8), K(0), "cast back"),
		NewFixing(day("2025-03-01"), fixing1, G(4), dec("26"), K(104), "bar fixed"),
		NewAlloy(day("2025-03-05"), casting1, G(1.2), K(6), "alloy"),
		NewInvoice(day("2025-03-10"), market1, G(2.5), K(70), "MVN-3"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestOpening_SplitReplay(t *testing.T) {
	// Replaying (before X) then (from X) must equal one full replay, for any
	// cut date X. This is the invariant statements rely on.
	l := seededBook(t)
	scopes := []Scope{
		ScopeAll(),
		ScopeType(Market),
		ScopeAccount(casting1),
		ScopeAccount(fixing1),
	}
	cuts := []Date{
		day("2025-01-01"), // before everything
		day("2025-01-20"), // on a voucher date
		day("2025-02-05"), // between vouchers
		day("2025-12-31"), // after everything
	}

	for _, scope := range scopes {
		full := l.OpeningTrading(scope, day("2026-01-01"))
		fullLocker := l.OpeningLocker(scope, day("2026-01-01"))

		for _, cut := range cuts {
			opening := l.OpeningTrading(scope, cut)
			window := l.VouchersIn(scope, NewRange(cut, day("2025-12-31")))
			_, closing := FoldTrading(opening, window)
			if !closing.Equal(full) {
				t.Errorf("%s split at %s: trading %v/%v, want %v/%v",
					scope, cut, closing.Gold, closing.Kwd, full.Gold, full.Kwd)
			}

			openingLocker := l.OpeningLocker(scope, cut)
			_, closingLocker := FoldLocker(openingLocker, window)
			if !closingLocker.Equal(fullLocker) {
				t.Errorf("%s split at %s: locker %s, want %s", scope, cut, closingLocker, fullLocker)
			}
		}
	}
}

func TestOpening_ZeroStartIsZero(t *testing.T) {
	// An unbounded window start means no history to replay.
	l := seededBook(t)
	if got := l.OpeningTrading(ScopeAll(), Date{}); !got.IsZero() {
		t.Errorf("opening = %v/%v, want zero", got.Gold, got.Kwd)
	}
	if got := l.OpeningLocker(ScopeAll(), Date{}); !got.IsZero() {
		t.Errorf("opening locker = %s, want zero", got)
	}
	if got := l.OpeningOpen(Date{}); !got.Pair.IsZero() || got.FixingReceipts != 0 || got.Fixings != 0 {
		t.Errorf("opening open balance = %+v, want zero", got)
	}
}

func TestOpening_EmptyScope(t *testing.T) {
	l := testBook(t)
	if got := l.OpeningTrading(ScopeAccount(market1), day("2025-06-01")); !got.IsZero() {
		t.Errorf("opening of an empty account = %v/%v, want zero", got.Gold, got.Kwd)
	}
}

func TestVouchersIn_Window(t *testing.T) {
	l := seededBook(t)

	testCases := []struct {
		name  string
		scope Scope
		r     Range
		want  int
	}{
		{"whole book", ScopeAll(), Range{}, 9},
		{"january only", ScopeAll(), NewRange(day("2025-01-01"), day("2025-01-31")), 3},
		{"window bounds are inclusive", ScopeAll(), NewRange(day("2025-01-15"), day("2025-02-10")), 3},
		{"single account", ScopeAccount(market1), Range{}, 4},
		{"market type", ScopeType(Market), Range{}, 4},
		{"empty window", ScopeAll(), NewRange(day("2024-01-01"), day("2024-12-31")), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(l.VouchersIn(tc.scope, tc.r)); got != tc.want {
				t.Errorf("got %d vouchers, want %d", got, tc.want)
			}
		})
	}
}

func TestVouchersIn_TypeScopeSkipsInactive(t *testing.T) {
	l := seededBook(t)
	if err := l.SetActive(market1, false); err != nil {
		t.Fatal(err)
	}

	if got := len(l.VouchersIn(ScopeType(Market), Range{})); got != 0 {
		t.Errorf("type scope returned %d vouchers from an inactive account, want 0", got)
	}
	// The single-account scope still sees them.
	if got := len(l.VouchersIn(ScopeAccount(market1), Range{})); got != 4 {
		t.Errorf("account scope returned %d vouchers, want 4", got)
	}
}
