package goldbook

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger represents the whole book: the account registry and the voucher
// record.
//
// In a Ledger vouchers are always in chronological order; vouchers on the
// same day keep their insertion order.
type Ledger struct {
	accounts map[AccountKey]*Account // index accounts by (type, no)
	vouchers []Voucher
	nextSeq  int // next book-assigned voucher sequence
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[AccountKey]*Account),
		vouchers: make([]Voucher, 0),
		nextSeq:  1,
	}
}

// Account returns the account with this key, or nil if unknown.
func (l *Ledger) Account(key AccountKey) *Account {
	a, ok := l.accounts[key]
	if !ok {
		return nil
	}
	return a
}

// CreateAccount declares a new account of the given type. The account number
// is the next in the type's dense sequence, starting at 1.
func (l *Ledger) CreateAccount(t AccountType, name string, on Date) (*Account, error) {
	if name == "" {
		return nil, fmt.Errorf("account name is missing")
	}
	if on.IsZero() {
		on = Today()
	}
	no := 0
	for key := range l.accounts {
		if key.Type == t && key.No > no {
			no = key.No
		}
	}
	a := &Account{Type: t, No: no + 1, Name: name, Active: true, Opened: on}
	l.accounts[a.Key()] = a
	return a, nil
}

// SetActive flips the account's active flag. Inactive accounts are excluded
// from type-level trading and locker aggregates but still contribute to the
// open balance.
func (l *Ledger) SetActive(key AccountKey, active bool) error {
	a := l.Account(key)
	if a == nil {
		return fmt.Errorf("account %s not declared in book", key)
	}
	a.Active = active
	return nil
}

// AllAccounts returns every account sorted by type then number.
func (l *Ledger) AllAccounts() []*Account {
	accounts := make([]*Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Type != accounts[j].Type {
			return accounts[i].Type < accounts[j].Type
		}
		return accounts[i].No < accounts[j].No
	})
	return accounts
}

// AccountsOf returns the accounts of a type, sorted by number. With
// activeOnly set, inactive accounts are skipped.
func (l *Ledger) AccountsOf(t AccountType, activeOnly bool) []*Account {
	accounts := make([]*Account, 0)
	for _, a := range l.AllAccounts() {
		if a.Type != t {
			continue
		}
		if activeOnly && !a.Active {
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts
}

// restoreAccount registers a decoded account without assigning a number.
func (l *Ledger) restoreAccount(a *Account) error {
	if a.No < 1 {
		return fmt.Errorf("account %q has an invalid number %d", a.Name, a.No)
	}
	if _, exists := l.accounts[a.Key()]; exists {
		return fmt.Errorf("account %s is already declared", a.Key())
	}
	l.accounts[a.Key()] = a
	return nil
}

// Append validates vouchers, assigns their book sequence, appends them and
// maintains the chronological order of the record. On a validation error
// nothing is appended.
func (l *Ledger) Append(vs ...Voucher) error {
	validated := make([]Voucher, 0, len(vs))
	for _, v := range vs {
		fixed, err := v.Validate(l)
		if err != nil {
			return fmt.Errorf("invalid %s voucher on %v: %w", v.What(), v.When(), err)
		}
		validated = append(validated, fixed)
	}
	for _, v := range validated {
		l.vouchers = append(l.vouchers, v.withSeq(l.nextSeq))
		l.nextSeq++
	}
	l.stableSort() // Ensure the record remains sorted after appending
	return nil
}

// restoreVoucher appends a decoded voucher keeping its persisted sequence.
func (l *Ledger) restoreVoucher(v Voucher) {
	if v.Seq() >= l.nextSeq {
		l.nextSeq = v.Seq() + 1
	}
	l.vouchers = append(l.vouchers, v)
}

// stableSort sorts the record by voucher date. The sort is stable, meaning
// vouchers on the same day maintain their original relative order. The fold
// is not commutative across kinds, so this stability is what makes balances
// reproducible when dates collide.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.vouchers, func(i, j int) bool {
		return l.vouchers[i].When().Before(l.vouchers[j].When())
	})
}

// AcceptAll is a filter that accepts every voucher.
func AcceptAll(Voucher) bool { return true }

// ByOwner returns a predicate that filters vouchers by owning account.
func ByOwner(key AccountKey) func(Voucher) bool {
	return func(v Voucher) bool { return v.Owner() == key }
}

// ByAccountType returns a predicate that filters vouchers by account type.
func ByAccountType(t AccountType) func(Voucher) bool {
	return func(v Voucher) bool { return v.Owner().Type == t }
}

// ByKind returns a predicate that filters vouchers by kind.
func ByKind(k Kind) func(Voucher) bool {
	return func(v Voucher) bool { return v.What() == k }
}

// Vouchers returns an iterator that yields each voucher in chronological
// order, keeping those accepted by at least one filter.
func (l *Ledger) Vouchers(filters ...func(Voucher) bool) iter.Seq2[int, Voucher] {
	return func(yield func(int, Voucher) bool) {
		for i, v := range l.vouchers {
			accept := false
			for _, filter := range filters {
				if filter(v) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Voucher returns the voucher with the given book sequence, or nil.
func (l *Ledger) Voucher(seq int) Voucher {
	for _, v := range l.vouchers {
		if v.Seq() == seq {
			return v
		}
	}
	return nil
}

// ReplaceVoucher substitutes the voucher with the given sequence by a new
// one, which is validated first. Any previously derived running balance is
// invalid after this; balances are always recomputed from the full record, so
// the next fold reflects the change.
func (l *Ledger) ReplaceVoucher(seq int, v Voucher) error {
	fixed, err := v.Validate(l)
	if err != nil {
		return fmt.Errorf("invalid %s voucher on %v: %w", v.What(), v.When(), err)
	}
	for i, old := range l.vouchers {
		if old.Seq() == seq {
			l.vouchers[i] = fixed.withSeq(seq)
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no voucher with sequence %d", seq)
}

// DeleteVoucher removes the voucher with the given sequence from the record.
func (l *Ledger) DeleteVoucher(seq int) error {
	for i, v := range l.vouchers {
		if v.Seq() == seq {
			l.vouchers = append(l.vouchers[:i], l.vouchers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no voucher with sequence %d", seq)
}

// MarkCashed records that a cheque receipt has been cashed. The locker fold
// reads the current status, so the next recomputation includes the gold.
func (l *Ledger) MarkCashed(seq int) error {
	for i, v := range l.vouchers {
		if v.Seq() != seq {
			continue
		}
		rec, ok := v.(Receipt)
		if !ok {
			return fmt.Errorf("voucher %d is a %s, not a receipt", seq, v.What())
		}
		if rec.PaymentMethod != PayCheque {
			return fmt.Errorf("receipt %d was not settled by cheque", seq)
		}
		if rec.Cashed {
			return fmt.Errorf("receipt %d is already cashed", seq)
		}
		rec.Cashed = true
		l.vouchers[i] = rec
		return nil
	}
	return fmt.Errorf("no voucher with sequence %d", seq)
}

// OldestVoucherDate returns the date of the earliest voucher in the record,
// or the zero date if the record is empty.
func (l *Ledger) OldestVoucherDate() Date {
	if len(l.vouchers) == 0 {
		return Date{}
	}
	return l.vouchers[0].When()
}

// NewestVoucherDate returns the date of the latest voucher in the record,
// or the zero date if the record is empty.
func (l *Ledger) NewestVoucherDate() Date {
	if len(l.vouchers) == 0 {
		return Date{}
	}
	return l.vouchers[len(l.vouchers)-1].When()
}
