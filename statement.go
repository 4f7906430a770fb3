package goldbook

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity reports a page capacity too small to hold the reserved
// synthetic rows. The request is rejected before any page is emitted.
var ErrInvalidCapacity = errors.New("invalid page capacity")

// LedgerEntry is a voucher enriched with the balance snapshots taken after
// applying it. It exists only for report rendering; the balances are derived,
// never stored.
type LedgerEntry struct {
	Voucher     Voucher
	GoldBalance Gold
	KwdBalance  Money
	LockerGold  Gold
	// LockerAffected marks entries that moved physical stock, for report
	// highlighting.
	LockerAffected bool
}

// Page is one report page: an ordered slice of entries, plus an optional
// synthetic opening-balance row (first page only) and an optional closing
// totals row (last page only).
type Page struct {
	Number  int // 1-based
	Entries []LedgerEntry
	Opening bool // carries the synthetic opening-balance row
	Closing bool // carries the synthetic closing/totals row
}

// Paginate partitions entries into pages of at most rowsPerPage rows,
// reserving one row on the first page for the opening-balance row and one on
// the last page for the closing/totals row, when requested.
//
// Entries are assigned in order, never reordered, never split. With no
// entries and no synthetic rows the result is zero pages; with no entries
// but synthetic rows requested, a single page carries them both.
func Paginate(entries []LedgerEntry, rowsPerPage int, opening, closing bool) ([]Page, error) {
	reserved := 0
	if opening {
		reserved++
	}
	if closing {
		reserved++
	}
	if rowsPerPage < 1 || rowsPerPage <= reserved {
		return nil, fmt.Errorf("%w: %d rows per page cannot hold %d reserved rows", ErrInvalidCapacity, rowsPerPage, reserved)
	}

	n := len(entries)
	total := (n + reserved + rowsPerPage - 1) / rowsPerPage
	if total == 0 {
		return []Page{}, nil
	}

	pages := make([]Page, 0, total)
	next := 0
	for number := 1; number <= total; number++ {
		capacity := rowsPerPage
		if number == 1 && opening {
			capacity--
		}
		if number == total && closing {
			capacity--
		}
		count := min(capacity, n-next)
		pages = append(pages, Page{
			Number:  number,
			Entries: entries[next : next+count],
			Opening: number == 1 && opening,
			Closing: number == total && closing,
		})
		next += count
	}
	return pages, nil
}

// Statement is a windowed ledger report for a scope: the annotated entries,
// their pagination, and the summary totals the rendering backend consumes
// without re-deriving any balance.
type Statement struct {
	Scope   Scope
	Range   Range
	Pages   []Page
	Entries []LedgerEntry

	Opening       BalancePair // balance replayed strictly before the window
	Closing       BalancePair // balance after the last in-window voucher
	OpeningLocker Gold
	ClosingLocker Gold
	// PeriodGold and PeriodKwd are the net trading movement inside the
	// window, i.e. Closing minus Opening.
	PeriodGold Gold
	PeriodKwd  Money
	Vouchers   int
}

// StatementOptions configures the statement layout. RowsPerPage is an opaque
// capacity supplied by the rendering backend's page geometry.
type StatementOptions struct {
	RowsPerPage int
	OpeningRow  bool
	ClosingRow  bool
}

// BuildStatement resolves the opening balances for the scope, folds the
// in-window vouchers into annotated entries, and tiles them into pages.
//
// Replaying (opening before From) + (window from From) yields the same
// closing balance as replaying the full history: the folds are associative
// over time-ordered concatenation, and every call site goes through here.
func (l *Ledger) BuildStatement(scope Scope, r Range, opts StatementOptions) (*Statement, error) {
	opening := l.OpeningTrading(scope, r.From)
	openingLocker := l.OpeningLocker(scope, r.From)

	window := l.VouchersIn(scope, r)
	trading, closing := FoldTrading(opening, window)
	locker, closingLocker := FoldLocker(openingLocker, window)

	entries := make([]LedgerEntry, 0, len(window))
	for i, v := range window {
		entries = append(entries, LedgerEntry{
			Voucher:        v,
			GoldBalance:    trading[i].Gold,
			KwdBalance:     trading[i].Kwd,
			LockerGold:     locker[i],
			LockerAffected: !LockerDelta(v).IsZero(),
		})
	}

	pages, err := Paginate(entries, opts.RowsPerPage, opts.OpeningRow, opts.ClosingRow)
	if err != nil {
		return nil, err
	}

	period := closing.Sub(opening)
	return &Statement{
		Scope:         scope,
		Range:         r,
		Pages:         pages,
		Entries:       entries,
		Opening:       opening,
		Closing:       closing,
		OpeningLocker: openingLocker,
		ClosingLocker: closingLocker,
		PeriodGold:    period.Gold,
		PeriodKwd:     period.Kwd,
		Vouchers:      len(entries),
	}, nil
}

// OpenBalanceReport is the windowed open-balance summary: the balance
// replayed before the window, the in-window movement, and the closing state
// with transaction counts.
type OpenBalanceReport struct {
	Range   Range
	Opening OpenBalance
	Closing OpenBalance
}

// BuildOpenBalance computes the open-balance report over the window. The
// scope is always the whole book.
func (l *Ledger) BuildOpenBalance(r Range) *OpenBalanceReport {
	opening := l.OpeningOpen(r.From)
	closing := FoldOpen(opening, l.VouchersIn(ScopeAll(), r))
	return &OpenBalanceReport{Range: r, Opening: opening, Closing: closing}
}
