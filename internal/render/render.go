// Package render writes the block report: a block summary table, one table
// per transaction, and an outputs table for each transaction that has outputs.
//
// Rendering never fails on bad field data. Each value is formatted on its own
// and falls back to its raw text, or to the placeholder when absent.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/zecblock/internal/explorer"
	"github.com/dmagro/zecblock/internal/units"
)

// NoTransactions is printed instead of the transaction sections for an empty block.
const NoTransactions = "No transactions in this block."

// Options configures a Renderer.
type Options struct {
	Color       bool
	Location    *time.Location // nil means time.Local
	Placeholder string         // shown for absent fields
}

// DefaultOptions returns coloured output in local time with "—" for absent fields.
func DefaultOptions() Options {
	return Options{Color: true, Location: time.Local, Placeholder: "—"}
}

type palette struct {
	blockTitle, blockField *color.Color
	txTitle, txField       *color.Color
	outTitle, outIndex     *color.Color
	header, notice         *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		blockTitle: color.New(color.Bold, color.FgCyan),
		blockField: color.New(color.Bold, color.FgMagenta),
		txTitle:    color.New(color.Bold, color.FgGreen),
		txField:    color.New(color.Bold, color.FgYellow),
		outTitle:   color.New(color.Bold, color.FgBlue),
		outIndex:   color.New(color.Bold, color.FgCyan),
		header:     color.New(color.FgCyan, color.Underline),
		notice:     color.New(color.FgRed),
	}
	if !enabled {
		for _, c := range []*color.Color{
			p.blockTitle, p.blockField, p.txTitle, p.txField,
			p.outTitle, p.outIndex, p.header, p.notice,
		} {
			c.DisableColor()
		}
	}
	return p
}

// Renderer writes reports to w.
type Renderer struct {
	w    io.Writer
	opts Options
	pal  palette
}

// New returns a Renderer writing to w. A nil opts.Location means local time.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Renderer{w: w, opts: opts, pal: newPalette(opts.Color)}
}

// Block writes the full report for b.
func (r *Renderer) Block(b *explorer.Block) {
	r.summary(b)

	txs := b.Transactions()
	if len(txs) == 0 {
		fmt.Fprintln(r.w, r.pal.notice.Sprint(NoTransactions))
		return
	}

	for i := range txs {
		tx := &txs[i]
		r.transaction(i+1, tx)
		if outs := tx.Outputs(); len(outs) > 0 {
			r.outputs(outs)
		}
	}
}

func (r *Renderer) summary(b *explorer.Block) {
	tbl := r.fieldTable("Block Summary", r.pal.blockTitle, r.pal.blockField)
	tbl.AddRow("Hash", r.text(b.Hash))
	tbl.AddRow("Previous Block Hash", r.text(b.PreviousBlockHash))
	tbl.AddRow("Next Block Hash", r.text(b.NextBlockHash))
	tbl.AddRow("Height", r.integer(b.Height))
	tbl.AddRow("Confirmations", r.integer(b.Confirmations))
	tbl.AddRow("Size (bytes)", r.integer(b.Size))
	tbl.AddRow("Merkle Root", r.text(b.MerkleRoot))
	tbl.AddRow("Nonce", r.integer(b.Nonce))
	tbl.AddRow("Difficulty", r.difficulty(b.Difficulty))
	tbl.AddRow("Transaction Count", r.integer(b.TxCount))
	tbl.AddRow("Block Time", r.timestamp(b.ResolvedTime()))
	r.finish(tbl)
}

func (r *Renderer) transaction(n int, tx *explorer.Transaction) {
	tbl := r.fieldTable(fmt.Sprintf("Transaction %d", n), r.pal.txTitle, r.pal.txField)
	tbl.AddRow("TxID", r.text(tx.TxID))
	tbl.AddRow("Block Hash", r.text(tx.BlockHash))
	tbl.AddRow("Block Height", r.integer(tx.BlockHeight))
	tbl.AddRow("Confirmations", r.integer(tx.Confirmations))
	tbl.AddRow("Block Time", r.timestamp(tx.BlockTime))
	tbl.AddRow("Value In", r.amount(tx.ValueInOrZero()))
	tbl.AddRow("Value Out", r.amount(tx.ValueOrZero()))
	tbl.AddRow("Fees", r.amount(tx.FeesOrZero()))
	r.finish(tbl)
}

func (r *Renderer) outputs(outs []explorer.Output) {
	fmt.Fprintln(r.w, r.pal.outTitle.Sprint("Outputs"))
	tbl := table.New("Index", "Value", "Address").
		WithWriter(r.w).
		WithHeaderFormatter(r.pal.header.SprintfFunc()).
		WithFirstColumnFormatter(r.pal.outIndex.SprintfFunc())
	for i := range outs {
		o := &outs[i]
		tbl.AddRow(r.text(o.N), r.amount(o.ValueOrZero()), o.AddressDisplay())
	}
	r.finish(tbl)
}

func (r *Renderer) fieldTable(title string, titleColor, fieldColor *color.Color) table.Table {
	fmt.Fprintln(r.w, titleColor.Sprint(title))
	return table.New("Field", "Value").
		WithWriter(r.w).
		WithHeaderFormatter(r.pal.header.SprintfFunc()).
		WithFirstColumnFormatter(fieldColor.SprintfFunc())
}

func (r *Renderer) finish(tbl table.Table) {
	tbl.Print()
	fmt.Fprintln(r.w)
}

func (r *Renderer) text(s explorer.Scalar) string {
	if !s.Present() {
		return r.opts.Placeholder
	}
	return s.Text()
}

// integer groups JSON integers; anything else is shown as-is.
func (r *Renderer) integer(s explorer.Scalar) string {
	if !s.IsInteger() {
		return r.text(s)
	}
	return units.GroupDigits(s.Text()).Text
}

func (r *Renderer) difficulty(s explorer.Scalar) string {
	if !s.Present() {
		return r.opts.Placeholder
	}
	return units.FormatDifficulty(s.Text()).Text
}

func (r *Renderer) timestamp(s explorer.Scalar) string {
	if !s.Present() {
		return r.opts.Placeholder
	}
	return units.FormatTimestamp(s.Text(), r.opts.Location).Text
}

func (r *Renderer) amount(s explorer.Scalar) string {
	return units.ZatoshiToZEC(s.Text()).Text
}
