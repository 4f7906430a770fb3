package goldbook

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying the voucher variant.
type Kind string

// Voucher kinds recorded in the book.
const (
	KindInvoice Kind = "inv"   // invoice, a debit
	KindReceipt Kind = "rec"   // receipt, a credit
	KindFixing  Kind = "gfv"   // gold-fixing voucher
	KindAlloy   Kind = "alloy" // alloy transaction, trades like an invoice
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindInvoice, KindReceipt, KindFixing, KindAlloy:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown voucher kind: %q", s)
	}
}

// PaymentMethod records how a market receipt was settled.
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCheque PaymentMethod = "cheque"
)

// ErrInconsistentVoucher reports a voucher violating a construction invariant:
// the reference/description rule, or a missing rate. Such vouchers are
// rejected, never silently coerced.
var ErrInconsistentVoucher = errors.New("inconsistent voucher")

// Voucher defines the common interface for all entries recorded against an
// account. The set of implementations is closed: Invoice, Receipt, Fixing and
// Alloy.
type Voucher interface {
	What() Kind          // What returns the voucher kind.
	When() Date          // When returns the date on which the voucher was issued.
	Owner() AccountKey   // Owner returns the account the voucher belongs to.
	GoldWeight() Gold    // GoldWeight returns the gold magnitude (direction comes from the kind).
	Amount() Money       // Amount returns the currency magnitude (direction comes from the kind).
	Reference() string   // Reference returns the MVN or the description, whichever is set.
	Seq() int            // Seq returns the book-assigned insertion sequence.
	Equal(Voucher) bool
	Validate(l *Ledger) (Voucher, error)

	withSeq(seq int) Voucher
}

// baseVoucher holds the fields every voucher carries.
type baseVoucher struct {
	Kind        Kind        `json:"kind"`
	Date        Date        `json:"date"`
	Type        AccountType `json:"accountType"`
	AccountNo   int         `json:"accountNo"`
	No          int         `json:"no,omitempty"` // insertion sequence, the stable tie-break
	Gold        Gold        `json:"gold"`
	Kwd         Money       `json:"kwd"`
	MVN         string      `json:"mvn,omitempty"`         // market reference, market accounts only
	Description string      `json:"description,omitempty"` // free text, all other account types
}

// What returns the voucher kind.
func (v baseVoucher) What() Kind { return v.Kind }

// When returns the date of the voucher.
func (v baseVoucher) When() Date { return v.Date }

// Owner returns the key of the owning account.
func (v baseVoucher) Owner() AccountKey { return AccountKey{Type: v.Type, No: v.AccountNo} }

// GoldWeight returns the unsigned gold magnitude.
func (v baseVoucher) GoldWeight() Gold { return v.Gold }

// Amount returns the unsigned currency magnitude.
func (v baseVoucher) Amount() Money { return v.Kwd }

// Seq returns the book-assigned insertion sequence, 0 before the voucher is appended.
func (v baseVoucher) Seq() int { return v.No }

// Reference returns the MVN for market vouchers, the description otherwise.
func (v baseVoucher) Reference() string {
	if v.MVN != "" {
		return v.MVN
	}
	return v.Description
}

func (v baseVoucher) equal(o baseVoucher) bool {
	return v.Kind == o.Kind && v.Date == o.Date &&
		v.Type == o.Type && v.AccountNo == o.AccountNo && v.No == o.No &&
		v.Gold.Equal(o.Gold) && v.Kwd.Equal(o.Kwd) &&
		v.MVN == o.MVN && v.Description == o.Description
}

// MarshalJSON implements the json.Marshaler interface for baseVoucher.
func (v baseVoucher) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordVoucher)
	w.Append("kind", v.Kind)
	w.Append("date", v.Date)
	w.Append("accountType", v.Type)
	w.Append("accountNo", v.AccountNo)
	w.Optional("no", v.No)
	w.Append("gold", v.Gold)
	w.Append("kwd", v.Kwd)
	w.Optional("mvn", v.MVN)
	w.Optional("description", v.Description)
	return w.MarshalJSON()
}

// validate checks the common fields. It sets the date to today if it's zero
// and enforces the magnitude and reference invariants.
func (v *baseVoucher) validate() error {
	if v.Date.IsZero() {
		v.Date = Today()
	}
	if v.Gold.IsNegative() {
		return fmt.Errorf("%w: gold must be a non-negative magnitude, got %s", ErrInconsistentVoucher, v.Gold)
	}
	if v.Kwd.IsNegative() {
		return fmt.Errorf("%w: kwd must be a non-negative magnitude, got %s", ErrInconsistentVoucher, v.Kwd)
	}
	// Market vouchers carry an MVN, everything else a description. Exactly one.
	if v.MVN != "" && v.Description != "" {
		return fmt.Errorf("%w: both mvn and description are set", ErrInconsistentVoucher)
	}
	if v.Type == Market {
		if v.MVN == "" {
			return fmt.Errorf("%w: market voucher requires an mvn reference", ErrInconsistentVoucher)
		}
	} else {
		if v.Description == "" {
			return fmt.Errorf("%w: %s voucher requires a description", ErrInconsistentVoucher, v.Type)
		}
		if v.MVN != "" {
			return fmt.Errorf("%w: mvn is reserved for market vouchers", ErrInconsistentVoucher)
		}
	}
	return nil
}

// validateOwner checks that the owning account is declared in the ledger.
func (v *baseVoucher) validateOwner(l *Ledger) error {
	if l.Account(v.Owner()) == nil {
		return fmt.Errorf("account %s not declared in book", v.Owner())
	}
	return nil
}

// newBase routes the single reference argument into the right field for the
// account type. Validation still rejects a wrong placement on append.
func newBase(kind Kind, on Date, owner AccountKey, gold Gold, kwd Money, ref string) baseVoucher {
	b := baseVoucher{Kind: kind, Date: on, Type: owner.Type, AccountNo: owner.No, Gold: gold, Kwd: kwd}
	if owner.Type == Market {
		b.MVN = ref
	} else {
		b.Description = ref
	}
	return b
}

// --- Invoice ---

// Invoice represents goods leaving the business against an account: gold and
// currency are debited to the account's trading balance.
type Invoice struct {
	baseVoucher
}

// NewInvoice creates a new Invoice voucher.
func NewInvoice(on Date, owner AccountKey, gold Gold, kwd Money, ref string) Invoice {
	return Invoice{baseVoucher: newBase(KindInvoice, on, owner, gold, kwd, ref)}
}

func (v Invoice) Equal(other Voucher) bool {
	o, ok := other.(Invoice)
	return ok && v.baseVoucher.equal(o.baseVoucher)
}

// Validate checks the Invoice fields.
func (v Invoice) Validate(l *Ledger) (Voucher, error) {
	if err := v.baseVoucher.validate(); err != nil {
		return v, err
	}
	if err := v.baseVoucher.validateOwner(l); err != nil {
		return v, err
	}
	return v, nil
}

func (v Invoice) withSeq(seq int) Voucher { v.No = seq; return v }

// --- Alloy ---

// Alloy represents an alloy transaction. It trades exactly like an invoice
// but never moves physical stock, so the locker fold ignores it.
type Alloy struct {
	baseVoucher
}

// NewAlloy creates a new Alloy voucher.
func NewAlloy(on Date, owner AccountKey, gold Gold, kwd Money, ref string) Alloy {
	return Alloy{baseVoucher: newBase(KindAlloy, on, owner, gold, kwd, ref)}
}

func (v Alloy) Equal(other Voucher) bool {
	o, ok := other.(Alloy)
	return ok && v.baseVoucher.equal(o.baseVoucher)
}

// Validate checks the Alloy fields.
func (v Alloy) Validate(l *Ledger) (Voucher, error) {
	if err := v.baseVoucher.validate(); err != nil {
		return v, err
	}
	if err := v.baseVoucher.validateOwner(l); err != nil {
		return v, err
	}
	return v, nil
}

func (v Alloy) withSeq(seq int) Voucher { v.No = seq; return v }

// --- Receipt ---

// Receipt represents gold or currency received from an account. A market
// receipt priced at the day's fixing carries a GoldRate and a FixingAmount,
// which is the monetary leg the open-balance fold tracks. A cheque receipt is
// deferred from the locker until it is marked cashed.
type Receipt struct {
	baseVoucher
	GoldRate      decimal.Decimal // price per gram when fixing-priced, zero otherwise
	FixingAmount  Money           // monetary leg of a fixing-priced receipt
	PaymentMethod PaymentMethod
	ChequeNo      string
	Cashed        bool
}

// NewReceipt creates a plain Receipt voucher.
func NewReceipt(on Date, owner AccountKey, gold Gold, kwd Money, ref string) Receipt {
	return Receipt{baseVoucher: newBase(KindReceipt, on, owner, gold, kwd, ref)}
}

// NewFixingReceipt creates a Receipt priced at the given gold rate. The
// fixing amount is the monetary leg recognized by the open-balance fold.
func NewFixingReceipt(on Date, owner AccountKey, gold Gold, rate decimal.Decimal, fixing Money, ref string) Receipt {
	r := NewReceipt(on, owner, gold, K(0), ref)
	r.GoldRate = rate
	r.FixingAmount = fixing
	return r
}

// IsFixingPriced reports whether this receipt carries a gold rate.
func (v Receipt) IsFixingPriced() bool { return !v.GoldRate.IsZero() }

// ChequePending reports whether the receipt is a cheque not yet cashed, in
// which case the gold is not yet physical stock.
func (v Receipt) ChequePending() bool { return v.PaymentMethod == PayCheque && !v.Cashed }

func (v Receipt) Equal(other Voucher) bool {
	o, ok := other.(Receipt)
	return ok && v.baseVoucher.equal(o.baseVoucher) &&
		v.GoldRate.Equal(o.GoldRate) && v.FixingAmount.Equal(o.FixingAmount) &&
		v.PaymentMethod == o.PaymentMethod && v.ChequeNo == o.ChequeNo && v.Cashed == o.Cashed
}

// Validate checks the Receipt fields.
func (v Receipt) Validate(l *Ledger) (Voucher, error) {
	if err := v.baseVoucher.validate(); err != nil {
		return v, err
	}
	if err := v.baseVoucher.validateOwner(l); err != nil {
		return v, err
	}
	switch v.PaymentMethod {
	case "", PayCash, PayCheque:
	default:
		return v, fmt.Errorf("%w: unknown payment method %q", ErrInconsistentVoucher, v.PaymentMethod)
	}
	if v.PaymentMethod != PayCheque && v.ChequeNo != "" {
		return v, fmt.Errorf("%w: cheque number on a %q receipt", ErrInconsistentVoucher, v.PaymentMethod)
	}
	if v.GoldRate.IsNegative() {
		return v, fmt.Errorf("%w: gold rate must be positive, got %s", ErrInconsistentVoucher, v.GoldRate)
	}
	if !v.FixingAmount.IsZero() && v.GoldRate.IsZero() {
		return v, fmt.Errorf("%w: fixing amount requires a gold rate", ErrInconsistentVoucher)
	}
	return v, nil
}

func (v Receipt) withSeq(seq int) Voucher { v.No = seq; return v }

// MarshalJSON implements the json.Marshaler interface for Receipt.
func (v Receipt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(v.baseVoucher)
	if v.IsFixingPriced() {
		w.Append("goldRate", v.GoldRate)
		w.Append("fixingAmount", v.FixingAmount)
	}
	w.Optional("paymentMethod", string(v.PaymentMethod))
	w.Optional("chequeNo", v.ChequeNo)
	w.Optional("cashed", v.Cashed)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Receipt.
func (v *Receipt) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseVoucher
		GoldRate      decimal.Decimal `json:"goldRate"`
		FixingAmount  Money           `json:"fixingAmount"`
		PaymentMethod PaymentMethod   `json:"paymentMethod"`
		ChequeNo      string          `json:"chequeNo"`
		Cashed        bool            `json:"cashed"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	v.baseVoucher = temp.baseVoucher
	v.GoldRate = temp.GoldRate
	v.FixingAmount = temp.FixingAmount
	v.PaymentMethod = temp.PaymentMethod
	v.ChequeNo = temp.ChequeNo
	v.Cashed = temp.Cashed
	return nil
}

// --- Fixing (GFV) ---

// Fixing represents a gold-fixing voucher: gold priced out at a fixed rate.
// It credits gold and debits currency in the trading fold, and is one of the
// two patterns the open-balance fold recognizes.
type Fixing struct {
	baseVoucher
	GoldRate decimal.Decimal // price per gram, required
}

// NewFixing creates a new Fixing voucher.
func NewFixing(on Date, owner AccountKey, gold Gold, rate decimal.Decimal, kwd Money, ref string) Fixing {
	return Fixing{baseVoucher: newBase(KindFixing, on, owner, gold, kwd, ref), GoldRate: rate}
}

func (v Fixing) Equal(other Voucher) bool {
	o, ok := other.(Fixing)
	return ok && v.baseVoucher.equal(o.baseVoucher) && v.GoldRate.Equal(o.GoldRate)
}

// Validate checks the Fixing fields. The gold rate is required.
func (v Fixing) Validate(l *Ledger) (Voucher, error) {
	if err := v.baseVoucher.validate(); err != nil {
		return v, err
	}
	if err := v.baseVoucher.validateOwner(l); err != nil {
		return v, err
	}
	if !v.GoldRate.IsPositive() {
		return v, fmt.Errorf("%w: gfv voucher requires a positive gold rate, got %s", ErrInconsistentVoucher, v.GoldRate)
	}
	return v, nil
}

func (v Fixing) withSeq(seq int) Voucher { v.No = seq; return v }

// MarshalJSON implements the json.Marshaler interface for Fixing.
func (v Fixing) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(v.baseVoucher)
	w.Append("goldRate", v.GoldRate)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Fixing.
func (v *Fixing) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseVoucher
		GoldRate decimal.Decimal `json:"goldRate"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	v.baseVoucher = temp.baseVoucher
	v.GoldRate = temp.GoldRate
	return nil
}
