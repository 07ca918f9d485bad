package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Nature classifies accounts in the chart of accounts.
type Nature string

const (
	NatureAsset     Nature = "asset"
	NatureLiability Nature = "liability"
	NatureEquity    Nature = "equity"
	NatureIncome    Nature = "income"
	NatureExpense   Nature = "expense"
)

// Natures lists every valid nature in chart order.
var Natures = []Nature{NatureAsset, NatureLiability, NatureEquity, NatureIncome, NatureExpense}

var natureLabels = map[Nature]string{
	NatureAsset:     "activo",
	NatureLiability: "pasivo",
	NatureEquity:    "patrimonio",
	NatureIncome:    "ingreso",
	NatureExpense:   "gasto",
}

// Valid reports whether n is one of the five natures.
func (n Nature) Valid() bool {
	_, ok := natureLabels[n]
	return ok
}

// Label returns the Spanish display name used in reports ("activo", ...).
func (n Nature) Label() string {
	if l, ok := natureLabels[n]; ok {
		return l
	}
	return string(n)
}

// ParseNature accepts either the canonical name or the Spanish label.
func ParseNature(s string) (Nature, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for n, label := range natureLabels {
		if s == string(n) || s == label {
			return n, true
		}
	}
	return "", false
}

// Account represents a row in the chart of accounts.
type Account struct {
	Code   string // four digits, unique
	Name   string
	Nature Nature
	Group  string
}

// Matches reports whether the code contains query or the name contains it,
// ignoring case.
func (a Account) Matches(query string) bool {
	return strings.Contains(a.Code, query) || ContainsFold(a.Name, query)
}

// ContainsFold is strings.Contains under Unicode case folding.
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
