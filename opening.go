package goldbook

import "fmt"

// scopeKind discriminates the three report scopes.
type scopeKind int

const (
	scopeAccount scopeKind = iota
	scopeType
	scopeAll
)

// Scope selects the accounts a report covers: a single account, every active
// account of a type, or the whole book.
type Scope struct {
	kind        scopeKind
	account     AccountKey
	accountType AccountType
}

// ScopeAccount scopes a report to a single account.
func ScopeAccount(key AccountKey) Scope { return Scope{kind: scopeAccount, account: key} }

// ScopeType scopes a report to every active account of a type. Inactive
// accounts are excluded from type-level trading and locker aggregates.
func ScopeType(t AccountType) Scope { return Scope{kind: scopeType, accountType: t} }

// ScopeAll scopes a report to the whole book, active and inactive accounts
// alike.
func ScopeAll() Scope { return Scope{kind: scopeAll} }

func (s Scope) String() string {
	switch s.kind {
	case scopeAccount:
		return s.account.String()
	case scopeType:
		return fmt.Sprintf("all %s accounts", s.accountType)
	default:
		return "whole book"
	}
}

// filter returns the voucher predicate for this scope.
func (s Scope) filter(l *Ledger) func(Voucher) bool {
	switch s.kind {
	case scopeAccount:
		return ByOwner(s.account)
	case scopeType:
		return func(v Voucher) bool {
			if v.Owner().Type != s.accountType {
				return false
			}
			a := l.Account(v.Owner())
			return a != nil && a.Active
		}
	default:
		return AcceptAll
	}
}

// VouchersIn collects the vouchers in scope within the date range, in
// chronological order. An empty scope yields an empty slice, not an error.
func (l *Ledger) VouchersIn(scope Scope, r Range) []Voucher {
	accept := scope.filter(l)
	vs := make([]Voucher, 0)
	for _, v := range l.Vouchers(accept) {
		if !r.Contains(v.When()) {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

// vouchersBefore collects the vouchers in scope strictly before the start
// date, the replay set that seeds a windowed report.
func (l *Ledger) vouchersBefore(scope Scope, start Date) []Voucher {
	accept := scope.filter(l)
	vs := make([]Voucher, 0)
	for _, v := range l.Vouchers(accept) {
		if !v.When().Before(start) {
			// The record is sorted by date, so it's safe to break.
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// OpeningTrading replays every voucher in scope strictly before start from a
// zero pair and returns the trading balance as of the window opening. A zero
// start date means the window is unbounded from the beginning: the opening
// balance is zero.
func (l *Ledger) OpeningTrading(scope Scope, start Date) BalancePair {
	if start.IsZero() {
		return BalancePair{}
	}
	_, closing := FoldTrading(BalancePair{}, l.vouchersBefore(scope, start))
	return closing
}

// OpeningLocker replays every voucher in scope strictly before start from
// zero and returns the locker gold balance as of the window opening.
func (l *Ledger) OpeningLocker(scope Scope, start Date) Gold {
	if start.IsZero() {
		return Gold{}
	}
	_, closing := FoldLocker(Gold{}, l.vouchersBefore(scope, start))
	return closing
}

// OpeningOpen replays every voucher in the book strictly before start and
// returns the open balance as of the window opening. The open balance is
// always system-wide: inactive accounts contribute here.
func (l *Ledger) OpeningOpen(start Date) OpenBalance {
	if start.IsZero() {
		return OpenBalance{}
	}
	return FoldOpen(OpenBalance{}, l.vouchersBefore(ScopeAll(), start))
}
