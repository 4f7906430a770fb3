// Package goldbook provides the bookkeeping engine for a jewellery trading
// business: accounts, vouchers, running balances, and printable ledger
// statements. It is designed to be local-first and auditable, keeping the
// whole book in a human-readable JSONL file.
//
// The core functionalities include:
//   - Account Registry: market, casting, faceting, project, and gold-fixing
//     accounts, numbered densely per type.
//   - Voucher Ledger: recording invoices, receipts, gold-fixing vouchers and
//     alloy transactions in a chronological, replayable record.
//   - Balance Accumulators: three independent folds over the voucher stream
//     computing the trading balance, the locker (physical stock) balance, and
//     the cross-account open balance.
//   - Opening Balance Resolution: replaying history strictly before a cut-off
//     date to seed a windowed report.
//   - Statement Pagination: tiling ledger entries onto fixed-capacity report
//     pages with synthetic opening and closing rows.
//
// This package serves as the foundational logic for the `gbk` command-line
// tool, ensuring every balance shown anywhere is derived from the same fold.
package goldbook
