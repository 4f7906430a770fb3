package goldbook

// BalancePair is a derived gold/currency balance. It is never persisted,
// always recomputed by folding the voucher record.
type BalancePair struct {
	Gold Gold
	Kwd  Money
}

// Add returns the sum of two pairs.
func (p BalancePair) Add(q BalancePair) BalancePair {
	return BalancePair{Gold: p.Gold.Add(q.Gold), Kwd: p.Kwd.Add(q.Kwd)}
}

// Sub returns the difference of two pairs.
func (p BalancePair) Sub(q BalancePair) BalancePair {
	return BalancePair{Gold: p.Gold.Sub(q.Gold), Kwd: p.Kwd.Sub(q.Kwd)}
}

// Equal reports whether two pairs hold the same values.
func (p BalancePair) Equal(q BalancePair) bool {
	return p.Gold.Equal(q.Gold) && p.Kwd.Equal(q.Kwd)
}

// IsZero reports whether both legs are zero.
func (p BalancePair) IsZero() bool { return p.Gold.IsZero() && p.Kwd.IsZero() }

// TradingDelta returns the signed trading-balance contribution of a voucher.
// The sign convention is fixed per kind, independent of the account type:
//
//	inv, alloy:  +gold  +kwd
//	rec:         -gold  -kwd
//	gfv:         +gold  -kwd
//
// Amounts are stored as non-negative magnitudes; the direction lives here and
// nowhere else.
func TradingDelta(v Voucher) BalancePair {
	switch v.What() {
	case KindInvoice, KindAlloy:
		return BalancePair{Gold: v.GoldWeight(), Kwd: v.Amount()}
	case KindReceipt:
		return BalancePair{Gold: v.GoldWeight().Neg(), Kwd: v.Amount().Neg()}
	case KindFixing:
		return BalancePair{Gold: v.GoldWeight(), Kwd: v.Amount().Neg()}
	default:
		return BalancePair{}
	}
}

// FoldTrading folds a chronological voucher sequence into running trading
// balances, starting from the opening pair. It returns the snapshot after
// applying each voucher, plus the final pair. The fold is strictly
// sequential: vouchers must arrive pre-sorted ascending by date, stable by
// insertion order.
func FoldTrading(opening BalancePair, vs []Voucher) (snapshots []BalancePair, closing BalancePair) {
	snapshots = make([]BalancePair, 0, len(vs))
	closing = opening
	for _, v := range vs {
		closing = closing.Add(TradingDelta(v))
		snapshots = append(snapshots, closing)
	}
	return snapshots, closing
}
