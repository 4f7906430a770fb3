package goldbook

// LockerDelta returns the signed physical-stock contribution of a voucher,
// independent of the trading balance. Gold-fixing vouchers and alloy
// transactions never move physical stock and are unconditionally excluded.
//
// For the remaining kinds the rule depends on the owning account type:
//
//	market:    inv takes gold out; rec brings gold in unless it is an
//	           uncashed cheque, which is deferred until marked cashed.
//	casting, faceting, project:
//	           inv takes gold out; rec brings gold in, payment method
//	           irrelevant.
//	fixing:    rec brings gold in; inv has no defined effect.
//
// The rule reads the voucher's current cheque status, not a historical
// snapshot: recomputing after a cheque is cashed yields a different locker
// balance, which is expected.
func LockerDelta(v Voucher) Gold {
	switch v.What() {
	case KindFixing, KindAlloy:
		return Gold{}
	}

	switch v.Owner().Type {
	case Market:
		switch v.What() {
		case KindInvoice:
			return v.GoldWeight().Neg()
		case KindReceipt:
			if rec, ok := v.(Receipt); ok && rec.ChequePending() {
				return Gold{}
			}
			return v.GoldWeight()
		}
	case Casting, Faceting, Project:
		switch v.What() {
		case KindInvoice:
			return v.GoldWeight().Neg()
		case KindReceipt:
			return v.GoldWeight()
		}
	case GoldFixing:
		if v.What() == KindReceipt {
			return v.GoldWeight()
		}
	}
	return Gold{}
}

// FoldLocker folds a chronological voucher sequence into the running locker
// gold balance, starting from the opening weight. It returns the snapshot
// after applying each voucher, plus the final weight.
func FoldLocker(opening Gold, vs []Voucher) (snapshots []Gold, closing Gold) {
	snapshots = make([]Gold, 0, len(vs))
	closing = opening
	for _, v := range vs {
		closing = closing.Add(LockerDelta(v))
		snapshots = append(snapshots, closing)
	}
	return snapshots, closing
}
