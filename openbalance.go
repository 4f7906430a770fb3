package goldbook

// OpenBalance is the cross-account open-balance ledger: the one fold that
// scans every voucher system-wide, inactive accounts included, regardless of
// account type grouping.
type OpenBalance struct {
	Pair BalancePair
	// Transaction counts of the two recognized patterns.
	FixingReceipts int // market receipts priced at a gold rate
	Fixings        int // gfv vouchers
}

// openDelta returns the open-balance contribution of a voucher, and whether
// the voucher matches one of the two recognized patterns:
//
//   - a market receipt with a gold rate set (a fixing-priced receipt) adds
//     its gold and its fixing amount; the fixing amount is the monetary
//     leg here, the receipt's kwd is unused;
//   - a gfv voucher on any account subtracts its gold and its kwd.
//
// Every other voucher is ignored.
func openDelta(v Voucher) (BalancePair, bool) {
	switch t := v.(type) {
	case Receipt:
		if t.Owner().Type == Market && t.IsFixingPriced() {
			return BalancePair{Gold: t.GoldWeight(), Kwd: t.FixingAmount}, true
		}
	case Fixing:
		return BalancePair{Gold: t.GoldWeight().Neg(), Kwd: t.Amount().Neg()}, true
	}
	return BalancePair{}, false
}

// FoldOpen folds a chronological voucher sequence into the open balance,
// starting from the given opening state. Vouchers that match neither pattern
// leave the state untouched.
func FoldOpen(opening OpenBalance, vs []Voucher) OpenBalance {
	state := opening
	for _, v := range vs {
		delta, matched := openDelta(v)
		if !matched {
			continue
		}
		state.Pair = state.Pair.Add(delta)
		switch v.What() {
		case KindReceipt:
			state.FixingReceipts++
		case KindFixing:
			state.Fixings++
		}
	}
	return state
}
