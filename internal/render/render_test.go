package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmagro/zecblock/internal/explorer"
)

const blockDoc = `{
	"page": 918273,
	"totalPages": 827364,
	"itemsOnPage": 736455,
	"version": 645546,
	"bits": "1c0badbe",
	"hash": "00000000019fa4d7",
	"previousBlockHash": "0000000000c0ffee",
	"height": 2500000,
	"confirmations": 1234,
	"size": 1734,
	"merkleRoot": "4f2e9a",
	"nonce": "0000a1b2",
	"difficulty": "83178453.587",
	"txCount": 2,
	"time": 1700000000,
	"txs": [
		{
			"txid": "tx-one",
			"blockHash": "00000000019fa4d7",
			"blockHeight": 2500000,
			"confirmations": 1234,
			"blockTime": 1700000000,
			"valueIn": "0",
			"value": "312500000",
			"vout": [
				{"n": 0, "value": "250000000", "isAddress": true, "addresses": ["addrA", "addrB"]},
				{"n": 1, "value": "62500000", "isAddress": false, "addresses": ["hiddenAddr"]}
			]
		},
		{
			"txid": "tx-two",
			"blockHeight": 2500000,
			"blockTime": "not-a-time",
			"valueIn": "bogus",
			"value": "123456789",
			"fees": "2260"
		}
	]
}`

func decode(t *testing.T, doc string) *explorer.Block {
	t.Helper()
	var b explorer.Block
	if err := json.Unmarshal([]byte(doc), &b); err != nil {
		t.Fatalf("decoding block: %v", err)
	}
	return &b
}

func renderString(t *testing.T, b *explorer.Block) string {
	t.Helper()
	var buf bytes.Buffer
	New(&buf, Options{Location: time.UTC, Placeholder: "—"}).Block(b)
	return buf.String()
}

// rowValue returns the text after label on the first line that starts with it.
func rowValue(out, label string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, label+" ") {
			return strings.TrimSpace(strings.TrimPrefix(line, label)), true
		}
	}
	return "", false
}

func TestBlockSummary(t *testing.T) {
	out := renderString(t, decode(t, blockDoc))

	tests := []struct {
		label string
		want  string
	}{
		{"Hash", "00000000019fa4d7"},
		{"Previous Block Hash", "0000000000c0ffee"},
		{"Next Block Hash", "—"},
		{"Height", "2,500,000"},
		{"Confirmations", "1,234"},
		{"Size (bytes)", "1,734"},
		{"Merkle Root", "4f2e9a"},
		{"Nonce", "0000a1b2"},
		{"Difficulty", "83,178,453.59"},
		{"Transaction Count", "2"},
		{"Block Time", "2023-11-14 22:13:20"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := rowValue(out, tt.label)
			if !ok {
				t.Fatalf("row %q missing from:\n%s", tt.label, out)
			}
			if got != tt.want {
				t.Errorf("row %q = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestSectionOrder(t *testing.T) {
	out := renderString(t, decode(t, blockDoc))

	order := []string{"Block Summary", "Transaction 1", "Outputs", "Transaction 2"}
	pos := -1
	for _, title := range order {
		i := strings.Index(out, title)
		if i <= pos {
			t.Fatalf("section %q out of order in:\n%s", title, out)
		}
		pos = i
	}
	if strings.Count(out, "Outputs") != 1 {
		t.Errorf("expected exactly one Outputs section, got %d", strings.Count(out, "Outputs"))
	}
	if strings.Contains(out, NoTransactions) {
		t.Error("notice printed for a block with transactions")
	}
}

func TestTransactionRows(t *testing.T) {
	out := renderString(t, decode(t, blockDoc))

	first := out[strings.Index(out, "Transaction 1"):strings.Index(out, "Outputs")]
	second := out[strings.Index(out, "Transaction 2"):]

	checks := []struct {
		section, label, want string
	}{
		{first, "TxID", "tx-one"},
		{first, "Block Height", "2,500,000"},
		{first, "Confirmations", "1,234"},
		{first, "Block Time", "2023-11-14 22:13:20"},
		{first, "Value In", "0.00000000 ZEC"},
		{first, "Value Out", "3.12500000 ZEC"},
		{first, "Fees", "0.00000000 ZEC"},
		{second, "Block Hash", "—"},
		{second, "Confirmations", "—"},
		{second, "Block Time", "not-a-time"},
		{second, "Value In", "bogus"},
		{second, "Value Out", "1.23456789 ZEC"},
		{second, "Fees", "0.00002260 ZEC"},
	}

	for _, c := range checks {
		got, ok := rowValue(c.section, c.label)
		if !ok {
			t.Errorf("row %q missing", c.label)
			continue
		}
		if got != c.want {
			t.Errorf("row %q = %q, want %q", c.label, got, c.want)
		}
	}
}

func TestOutputsTable(t *testing.T) {
	out := renderString(t, decode(t, blockDoc))

	if !strings.Contains(out, "2.50000000 ZEC") || !strings.Contains(out, "addrA, addrB") {
		t.Errorf("address output row missing:\n%s", out)
	}
	var naRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "0.62500000 ZEC") {
			naRow = line
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(naRow), "N/A") {
		t.Errorf("non-address output row = %q, want N/A address", naRow)
	}
	if strings.Contains(out, "hiddenAddr") {
		t.Error("address list printed for an output whose address flag is false")
	}
}

func TestEmptyBlock(t *testing.T) {
	out := renderString(t, decode(t, `{"hash": "abc", "height": 1, "txs": []}`))

	if !strings.Contains(out, "Block Summary") {
		t.Fatalf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, NoTransactions) {
		t.Errorf("notice missing:\n%s", out)
	}
	if strings.Contains(out, "Transaction 1") || strings.Contains(out, "Outputs") {
		t.Errorf("transaction sections rendered for an empty block:\n%s", out)
	}
	if got, _ := rowValue(out, "Difficulty"); got != "—" {
		t.Errorf("Difficulty = %q, want placeholder", got)
	}
	if got, _ := rowValue(out, "Block Time"); got != "1970-01-01 00:00:00" {
		t.Errorf("Block Time = %q, want epoch", got)
	}
}

func TestIgnoredFieldsNeverRendered(t *testing.T) {
	out := renderString(t, decode(t, blockDoc))

	for _, v := range []string{"918273", "918,273", "827364", "827,364", "736455", "736,455", "645546", "645,546", "1c0badbe"} {
		if strings.Contains(out, v) {
			t.Errorf("output contains envelope value %q", v)
		}
	}
}

func TestMalformedFieldsDoNotAbort(t *testing.T) {
	out := renderString(t, decode(t, `{
		"height": "tall",
		"difficulty": "very",
		"time": "soon",
		"txs": [{"txid": "x", "vout": [{"value": "lots", "isAddress": true}]}]
	}`))

	if got, _ := rowValue(out, "Height"); got != "tall" {
		t.Errorf("Height = %q, want raw value", got)
	}
	if got, _ := rowValue(out, "Difficulty"); got != "very" {
		t.Errorf("Difficulty = %q, want raw value", got)
	}
	if got, _ := rowValue(out, "Block Time"); got != "soon" {
		t.Errorf("Block Time = %q, want raw value", got)
	}
	if !strings.Contains(out, "lots") {
		t.Errorf("output value fallback missing:\n%s", out)
	}
}

func TestMalformedOutputsStillRender(t *testing.T) {
	out := renderString(t, decode(t, `{
		"hash": "abc",
		"difficulty": 1e999999999,
		"txs": [{"txid": "x", "vout": [
			{"n": 0, "value": "100", "isAddress": false, "addresses": "t1hidden"},
			7
		]}]
	}`))

	if got, _ := rowValue(out, "Difficulty"); got != "1e999999999" {
		t.Errorf("Difficulty = %q, want raw value", got)
	}
	if !strings.Contains(out, "Outputs") || !strings.Contains(out, "0.00000100 ZEC") {
		t.Fatalf("outputs missing:\n%s", out)
	}
	if strings.Contains(out, "t1hidden") {
		t.Error("address printed for an output whose address flag is false")
	}
	if strings.Count(out, "N/A") != 2 {
		t.Errorf("want two N/A address cells, got %d:\n%s", strings.Count(out, "N/A"), out)
	}
}
