package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/report"
	"github.com/cleared-dev/ledgerlab/internal/scenario"
)

// Renderer writes reports as terminal tables.
type Renderer struct {
	Currency string // ISO 4217 code, defaults to PEN
	Color    bool
	PageSize int // ledger accounts shown unless all is requested; 0 shows every account
}

// New returns a Renderer configured from cfg.
func New(cfg *config.Config) Renderer {
	return Renderer{
		Currency: cfg.Business.Currency,
		Color:    cfg.Reports.Color,
		PageSize: cfg.Reports.LedgerPageSize,
	}
}

// Money formats d in the renderer's currency, rounded to the currency's
// minor unit (cents for PEN, whole yen for JPY).
func (r Renderer) Money(d decimal.Decimal) string {
	code := r.Currency
	if code == "" {
		code = money.PEN
	}
	fraction := int32(2)
	if c := money.GetCurrency(code); c != nil {
		fraction = int32(c.Fraction)
	}
	return money.New(d.Round(fraction).Shift(fraction).IntPart(), code).Display()
}

func (r Renderer) write(t *Table, w io.Writer) error {
	color.NoColor = !r.Color
	return textRenderer{format: r.Money}.render(t, w)
}

// Accounts writes the chart of accounts.
func (r Renderer) Accounts(w io.Writer, accounts []model.Account) error {
	t := NewTable(4)
	t.AddRow().AddText("Código", Left).AddText("Nombre", Left).AddText("Naturaleza", Left).AddText("Grupo", Left)
	t.AddSeparatorRow()
	for _, a := range accounts {
		t.AddRow().AddText(a.Code, Left).AddText(a.Name, Left).AddText(a.Nature.Label(), Left).AddText(a.Group, Left)
	}
	return r.write(t, w)
}

// Scenarios writes the scenario catalog.
func (r Renderer) Scenarios(w io.Writer, scenarios []scenario.Scenario) error {
	t := NewTable(4)
	t.AddRow().AddText("Clave", Left).AddText("Nombre", Left).AddText("Asientos", Right).AddText("Descripción", Left)
	t.AddSeparatorRow()
	for _, s := range scenarios {
		t.AddRow().
			AddText(s.Slug, Left).
			AddText(s.Name, Left).
			AddText(strconv.Itoa(len(s.Entries)), Right).
			AddText(s.Description, Left)
	}
	return r.write(t, w)
}

// Diary writes numbered journal entries, one block per entry.
func (r Renderer) Diary(w io.Writer, entries []report.DiaryEntry) error {
	if len(entries) == 0 {
		_, err := io.WriteString(w, "Sin asientos registrados.\n")
		return err
	}

	t := NewTable(7)
	t.AddRow().
		AddText("N°", Right).
		AddText("Fecha", Left).
		AddText("Cuenta", Left).
		AddText("Nombre", Left).
		AddText("Descripción", Left).
		AddText("Debe", Right).
		AddText("Haber", Right)
	for _, e := range entries {
		t.AddSeparatorRow()
		for i, l := range e.Lines {
			row := t.AddRow()
			if i == 0 {
				row.AddText(strconv.Itoa(e.Number), Right).AddText(e.Date.Format(model.DateFormat), Left)
			} else {
				row.AddEmpty().AddEmpty()
			}
			name := l.AccountName
			if name == "" {
				name = "(cuenta eliminada)"
			}
			row.AddText(l.AccountCode, Left).AddText(name, Left).AddText(l.Description, Left)
			addNonZero(row, l.Debit)
			addNonZero(row, l.Credit)
		}
	}
	return r.write(t, w)
}

// Ledger writes one T-account block per ledger. Unless all is set, only
// the first PageSize accounts are shown.
func (r Renderer) Ledger(w io.Writer, ledgers []report.AccountLedger, all bool) error {
	if len(ledgers) == 0 {
		_, err := io.WriteString(w, "Sin movimientos.\n")
		return err
	}

	shown := ledgers
	if !all && r.PageSize > 0 && len(shown) > r.PageSize {
		shown = shown[:r.PageSize]
	}

	for _, l := range shown {
		if _, err := fmt.Fprintf(w, "%s %s (%s)\n", l.Account.Code, l.Account.Name, l.Account.Nature.Label()); err != nil {
			return err
		}

		t := NewTable(4)
		t.AddRow().AddText("Fecha", Left).AddText("Descripción", Left).AddText("Debe", Right).AddText("Haber", Right)
		t.AddSeparatorRow()
		for _, m := range l.Movements {
			row := t.AddRow().AddText(m.Date.Format(model.DateFormat), Left).AddText(m.Description, Left)
			addNonZero(row, m.Debit)
			addNonZero(row, m.Credit)
		}
		t.AddSeparatorRow()
		t.AddRow().AddText("Total", Left).AddEmpty().AddAmount(l.TotalDebit, false).AddAmount(l.TotalCredit, false)
		if err := r.write(t, w); err != nil {
			return err
		}

		side := green
		if l.Side() == report.Creditor {
			side = red
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", side.Sprintf("%s: %s", l.Side(), r.Money(l.DisplayBalance()))); err != nil {
			return err
		}
	}

	if hidden := len(ledgers) - len(shown); hidden > 0 {
		if _, err := fmt.Fprintf(w, "... %d cuentas más (use --all)\n", hidden); err != nil {
			return err
		}
	}
	return nil
}

// TrialBalance writes the trial balance with its totals row.
func (r Renderer) TrialBalance(w io.Writer, tb report.TrialBalance) error {
	t := NewTable(7)
	t.AddRow().
		AddText("Código", Left).
		AddText("Nombre", Left).
		AddText("Naturaleza", Left).
		AddText("Grupo", Left).
		AddText("Debe", Right).
		AddText("Haber", Right).
		AddText("Saldo", Right)
	t.AddSeparatorRow()
	for _, s := range tb.Rows {
		t.AddRow().
			AddText(s.Account.Code, Left).
			AddText(s.Account.Name, Left).
			AddText(s.Account.Nature.Label(), Left).
			AddText(s.Account.Group, Left).
			AddAmount(s.Debit, false).
			AddAmount(s.Credit, false).
			AddAmount(s.Balance, true)
	}
	t.AddSeparatorRow()
	t.AddRow().
		AddEmpty().
		AddText("Totales", Left).
		AddEmpty().
		AddEmpty().
		AddAmount(tb.Totals.Debit, false).
		AddAmount(tb.Totals.Credit, false).
		AddAmount(tb.Totals.Balance, true)
	return r.write(t, w)
}

// KPIs writes the dashboard indicators.
func (r Renderer) KPIs(w io.Writer, k report.KPIs) error {
	t := NewTable(2)
	t.AddRow().AddText("Asientos", Left).AddText(strconv.Itoa(k.EntryCount), Right)
	t.AddRow().AddText("Saldo neto", Left).AddText(r.Money(k.NetBalance), Right)
	t.AddRow().AddText("Errores", Left).AddText(strconv.Itoa(k.ErrorCount), Right)
	return r.write(t, w)
}

func addNonZero(row *Row, n decimal.Decimal) {
	if n.IsZero() {
		row.AddEmpty()
		return
	}
	row.AddAmount(n, false)
}
