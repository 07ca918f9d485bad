package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Alignment is the alignment of a text cell.
type Alignment int

const (
	Left Alignment = iota
	Right
)

// Table is a fixed-width matrix of cells.
type Table struct {
	width int
	rows  []*Row
}

// NewTable creates a table with width columns.
func NewTable(width int) *Table {
	return &Table{width: width}
}

// AddRow adds a row. Missing trailing cells render empty.
func (t *Table) AddRow() *Row {
	r := &Row{cells: make([]cell, 0, t.width)}
	t.rows = append(t.rows, r)
	return r
}

// AddSeparatorRow adds a horizontal rule.
func (t *Table) AddSeparatorRow() {
	r := t.AddRow()
	for i := 0; i < t.width; i++ {
		r.cells = append(r.cells, separatorCell{})
	}
}

// Row is a table row.
type Row struct {
	cells []cell
}

// AddText adds a text cell.
func (r *Row) AddText(content string, align Alignment) *Row {
	r.cells = append(r.cells, textCell{content: content, align: align})
	return r
}

// AddAmount adds a right-aligned amount. Colored amounts render green when
// positive and red when negative.
func (r *Row) AddAmount(n decimal.Decimal, colored bool) *Row {
	r.cells = append(r.cells, amountCell{n: n, colored: colored})
	return r
}

// AddEmpty adds an empty cell.
func (r *Row) AddEmpty() *Row {
	r.cells = append(r.cells, textCell{})
	return r
}

type cell interface {
	isSep() bool
}

type textCell struct {
	content string
	align   Alignment
}

func (textCell) isSep() bool { return false }

type amountCell struct {
	n       decimal.Decimal
	colored bool
}

func (amountCell) isSep() bool { return false }

type separatorCell struct{}

func (separatorCell) isSep() bool { return true }

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// textRenderer writes a Table as aligned plain text.
type textRenderer struct {
	format func(decimal.Decimal) string
}

func (r textRenderer) render(t *Table, w io.Writer) error {
	widths := make([]int, t.width)
	for _, row := range t.rows {
		for i, c := range row.cells {
			if n := r.cellWidth(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for _, row := range t.rows {
		var b strings.Builder
		for i := 0; i < t.width; i++ {
			var c cell = textCell{}
			if i < len(row.cells) {
				c = row.cells[i]
			}
			if i > 0 {
				if c.isSep() {
					b.WriteString("--")
				} else {
					b.WriteString("  ")
				}
			}
			r.renderCell(&b, c, widths[i])
		}
		if _, err := io.WriteString(w, strings.TrimRight(b.String(), " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r textRenderer) cellWidth(c cell) int {
	switch t := c.(type) {
	case textCell:
		return utf8.RuneCountInString(t.content)
	case amountCell:
		return utf8.RuneCountInString(r.format(t.n))
	}
	return 0
}

func (r textRenderer) renderCell(b *strings.Builder, c cell, width int) {
	switch t := c.(type) {
	case separatorCell:
		b.WriteString(strings.Repeat("-", width))

	case textCell:
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(t.content))
		if t.align == Right {
			b.WriteString(pad + t.content)
		} else {
			b.WriteString(t.content + pad)
		}

	case amountCell:
		s := r.format(t.n)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(s)))
		switch {
		case !t.colored || t.n.IsZero():
			b.WriteString(s)
		case t.n.IsNegative():
			b.WriteString(red.Sprint(s))
		default:
			b.WriteString(green.Sprint(s))
		}

	default:
		panic(fmt.Sprintf("%T is not a valid cell type", c))
	}
}
