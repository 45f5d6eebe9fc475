package explorer

import (
	"encoding/json"
	"strings"
)

// NotApplicable is shown in place of an address list for outputs that do not
// pay to an address.
const NotApplicable = "N/A"

// zeroAmount is substituted for missing amount fields.
var zeroAmount = String("0")

func orDefault(s, def Scalar) Scalar {
	if s.Present() {
		return s
	}
	return def
}

// ResolvedTime returns the block time: `time` when truthy, else `blockTime`
// when present, else zero.
func (b *Block) ResolvedTime() Scalar {
	if b.Time.Truthy() {
		return b.Time
	}
	return orDefault(b.BlockTime, Number("0"))
}

// Transactions returns the block's transactions, never nil.
func (b *Block) Transactions() []Transaction {
	if b.Txs == nil {
		return []Transaction{}
	}
	return []Transaction(b.Txs)
}

// ValueInOrZero returns valueIn, defaulting to "0".
func (t *Transaction) ValueInOrZero() Scalar { return orDefault(t.ValueIn, zeroAmount) }

// ValueOrZero returns the aggregate value, defaulting to "0".
func (t *Transaction) ValueOrZero() Scalar { return orDefault(t.Value, zeroAmount) }

// FeesOrZero returns fees, defaulting to "0".
func (t *Transaction) FeesOrZero() Scalar { return orDefault(t.Fees, zeroAmount) }

// Outputs returns the transaction's vout list, never nil.
func (t *Transaction) Outputs() []Output {
	if t.Vout == nil {
		return []Output{}
	}
	return []Output(t.Vout)
}

// ValueOrZero returns the output value, defaulting to "0".
func (o *Output) ValueOrZero() Scalar { return orDefault(o.Value, zeroAmount) }

// AddressDisplay joins the output's addresses with ", ". Outputs whose
// isAddress flag is not set always resolve to NotApplicable, whatever the
// addresses field holds. An addresses value that is not an array is shown
// as its raw text.
func (o *Output) AddressDisplay() string {
	if !o.IsAddress.Truthy() {
		return NotApplicable
	}
	if !o.Addresses.Present() {
		return ""
	}

	var addrs []Scalar
	if o.Addresses.Kind() != KindComposite || json.Unmarshal([]byte(o.Addresses.Text()), &addrs) != nil {
		return o.Addresses.Text()
	}
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		parts = append(parts, a.Text())
	}
	return strings.Join(parts, ", ")
}
