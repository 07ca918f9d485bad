package report

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debit(code, amount, desc string) model.JournalLine {
	return model.JournalLine{AccountCode: code, Debit: dec(amount), Description: desc}
}

func credit(code, amount, desc string) model.JournalLine {
	return model.JournalLine{AccountCode: code, Credit: dec(amount), Description: desc}
}

func fixtureAccounts() []model.Account {
	return []model.Account{
		{Code: "1011", Name: "Caja", Nature: model.NatureAsset, Group: "Activo Corriente"},
		{Code: "3311", Name: "Maquinaria y Equipo", Nature: model.NatureAsset, Group: "Activo No Corriente"},
		{Code: "6011", Name: `Compras "Mercaderías"`, Nature: model.NatureExpense, Group: "Gastos Operativos"},
		{Code: "7011", Name: "Ventas, netas", Nature: model.NatureIncome, Group: "Ingresos Ordinarios"},
	}
}

// fixtureJournal is submitted out of date order on purpose.
func fixtureJournal() []model.JournalEntry {
	return []model.JournalEntry{
		{
			ID:    "e1",
			Date:  date(2025, 3, 12),
			Lines: []model.JournalLine{debit("6011", "1000", "Compra al contado"), credit("1011", "1000", "Pago en efectivo")},
		},
		{
			ID:    "e2",
			Date:  date(2025, 3, 5),
			Lines: []model.JournalLine{debit("1011", "1500", "Cobro de venta"), credit("7011", "1500", "Venta de mercadería")},
		},
	}
}
