package goldbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The book is a single JSONL stream: one record per line, accounts and
// vouchers interleaved, discriminated by the "record" field. Account lines
// come first in the canonical encoding, but decoding accepts any order.
const (
	recordAccount = "account"
	recordVoucher = "voucher"
)

// DecodeLedger decodes a book from a stream of JSONL data, decodes each line
// into the appropriate account or voucher struct, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
			Kind   Kind   `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordAccount:
			var a Account
			if err := json.Unmarshal(lineBytes, &a); err != nil {
				return nil, fmt.Errorf("invalid account line %q: %w", string(lineBytes), err)
			}
			if err := ledger.restoreAccount(&a); err != nil {
				return nil, err
			}
			continue
		case recordVoucher:
			// handled below
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}

		var decoded Voucher
		var err error
		switch identifier.Kind {
		case KindInvoice:
			var v Invoice
			err = json.Unmarshal(lineBytes, &v)
			decoded = v
		case KindAlloy:
			var v Alloy
			err = json.Unmarshal(lineBytes, &v)
			decoded = v
		case KindReceipt:
			var v Receipt
			err = json.Unmarshal(lineBytes, &v)
			decoded = v
		case KindFixing:
			var v Fixing
			err = json.Unmarshal(lineBytes, &v)
			decoded = v
		default:
			err = fmt.Errorf("unknown voucher kind: %q", identifier.Kind)
		}
		if err != nil {
			return nil, err
		}
		ledger.restoreVoucher(decoded)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort on the ledger based on the voucher date.
	ledger.stableSort()

	return ledger, nil
}

// EncodeVoucher marshals a single voucher to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeVoucher(w io.Writer, v Voucher) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal voucher: %w", err)
	}

	// Write the JSON data followed by a newline to create the JSONL format.
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write voucher: %w", err)
	}
	return nil
}

// EncodeLedger persists the whole book to an io.Writer in canonical JSONL
// form: accounts first in type then number order, vouchers stable-sorted by
// date.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for _, a := range ledger.AllAccounts() {
		jsonData, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal account %s: %w", a.Key(), err)
		}
		if _, err := w.Write(append(jsonData, '\n')); err != nil {
			return fmt.Errorf("failed to write account: %w", err)
		}
	}

	for _, v := range ledger.vouchers {
		if err := EncodeVoucher(w, v); err != nil {
			return err
		}
	}

	return nil
}
