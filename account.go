package goldbook

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AccountType classifies an account and selects which balance rules apply to
// its vouchers.
type AccountType int

const (
	// Market accounts trade finished goods with outside customers; their
	// vouchers carry an MVN reference and may be settled by cash or cheque.
	Market AccountType = iota
	// Casting accounts track gold sent out for casting work.
	Casting
	// Faceting accounts track gold sent out for faceting work.
	Faceting
	// Project accounts track gold assigned to in-house projects.
	Project
	// GoldFixing accounts hold gold bought at a fixed price.
	GoldFixing
)

// AccountTypes lists all account types in display order.
var AccountTypes = []AccountType{Market, Casting, Faceting, Project, GoldFixing}

func (t AccountType) String() string {
	switch t {
	case Market:
		return "market"
	case Casting:
		return "casting"
	case Faceting:
		return "faceting"
	case Project:
		return "project"
	case GoldFixing:
		return "fixing"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "market":
		return Market, nil
	case "casting":
		return Casting, nil
	case "faceting":
		return Faceting, nil
	case "project":
		return Project, nil
	case "fixing", "gold-fixing":
		return GoldFixing, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for AccountType.
func (t AccountType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for AccountType.
func (t *AccountType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseAccountType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AccountKey identifies an account. Account numbers are a dense sequence per
// type, starting at 1, so the pair (type, no) is the identity; the number
// alone is not globally unique.
type AccountKey struct {
	Type AccountType
	No   int
}

func (k AccountKey) String() string { return fmt.Sprintf("%s-%d", k.Type, k.No) }

// ParseAccountKey parses an account identifier like "market-3". The number
// part is the last dash-separated segment, so "gold-fixing-2" works too.
func ParseAccountKey(s string) (AccountKey, error) {
	i := strings.LastIndexByte(s, '-')
	if i < 0 {
		return AccountKey{}, fmt.Errorf("invalid account %q, want <type>-<no>", s)
	}
	t, err := ParseAccountType(s[:i])
	if err != nil {
		return AccountKey{}, fmt.Errorf("invalid account %q: %w", s, err)
	}
	no, err := strconv.Atoi(s[i+1:])
	if err != nil || no < 1 {
		return AccountKey{}, fmt.Errorf("invalid account number in %q", s)
	}
	return AccountKey{Type: t, No: no}, nil
}

// Account is a trading counterparty in the book.
type Account struct {
	Type   AccountType
	No     int
	Name   string
	Active bool
	Opened Date
}

// Key returns the account's identity.
func (a *Account) Key() AccountKey { return AccountKey{Type: a.Type, No: a.No} }

// MarshalJSON implements the json.Marshaler interface for Account.
// Account lines share the book's JSONL stream with vouchers, discriminated by
// the "record" field.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordAccount)
	w.Append("type", a.Type)
	w.Append("accountNo", a.No)
	w.Append("name", a.Name)
	w.Append("active", a.Active)
	w.Optional("opened", a.Opened)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Account.
func (a *Account) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type   AccountType `json:"type"`
		No     int         `json:"accountNo"`
		Name   string      `json:"name"`
		Active bool        `json:"active"`
		Opened Date        `json:"opened"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	a.Type = temp.Type
	a.No = temp.No
	a.Name = temp.Name
	a.Active = temp.Active
	a.Opened = temp.Opened
	return nil
}
