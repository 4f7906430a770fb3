package goldbook

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// goldDisplayDigits is the display convention for gold weights: grams with 3
// fractional digits. Folds accumulate at full precision, rounding happens only
// here at presentation time.
const goldDisplayDigits = 3

// Gold represents a weight of gold in grams.
type Gold struct {
	value decimal.Decimal
}

// G builds a Gold weight from any numeric value.
func G[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Gold {
	return Gold{value: newDecimal(value)}
}

func (g Gold) Equal(o Gold) bool       { return g.value.Equal(o.value) }
func (g Gold) LessThan(o Gold) bool    { return g.value.LessThan(o.value) }
func (g Gold) GreaterThan(o Gold) bool { return g.value.GreaterThan(o.value) }
func (g Gold) Add(o Gold) Gold         { return Gold{value: g.value.Add(o.value)} }
func (g Gold) Sub(o Gold) Gold         { return Gold{value: g.value.Sub(o.value)} }
func (g Gold) Neg() Gold               { return Gold{value: g.value.Neg()} }
func (g Gold) Abs() Gold               { return Gold{value: g.value.Abs()} }
func (g Gold) IsZero() bool            { return g.value.IsZero() }
func (g Gold) IsPositive() bool        { return g.value.IsPositive() }
func (g Gold) IsNegative() bool        { return g.value.IsNegative() }

// Mul multiplies the weight by a unit rate, yielding a monetary amount.
func (g Gold) Mul(rate decimal.Decimal) Money { return Money{value: g.value.Mul(rate)} }

// String renders the weight rounded to the display convention.
func (g Gold) String() string { return g.value.StringFixed(goldDisplayDigits) }

// MarshalJSON implements the json.Marshaler interface for Gold.
func (g Gold) MarshalJSON() ([]byte, error) {
	return g.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Gold.
func (g *Gold) UnmarshalJSON(decimalBytes []byte) error {
	return g.value.UnmarshalJSON(decimalBytes)
}
