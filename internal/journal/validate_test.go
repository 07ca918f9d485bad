package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func draft(lines ...model.JournalLine) model.EntryDraft {
	return model.EntryDraft{Date: date(2025, 3, 10), Lines: lines}
}

func debit(code, amount string) model.JournalLine {
	return model.JournalLine{AccountCode: code, Debit: dec(amount)}
}

func credit(code, amount string) model.JournalLine {
	return model.JournalLine{AccountCode: code, Credit: dec(amount)}
}

func TestValidate_Balanced(t *testing.T) {
	v := NewValidator(id.Sequence("e"))

	got, err := v.Validate(draft(debit("6011", "1000"), credit("1011", "1000")))
	require.NoError(t, err)
	assert.Equal(t, "e-0001", got.ID)
	assert.Equal(t, date(2025, 3, 10), got.Date)
	require.Len(t, got.Lines, 2)
	assert.True(t, got.Balanced())
}

func TestValidate_FreshIDs(t *testing.T) {
	v := NewValidator(nil)
	d := draft(debit("6011", "1"), credit("1011", "1"))

	a, err := v.Validate(d)
	require.NoError(t, err)
	b, err := v.Validate(d)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestValidate_Normalizes(t *testing.T) {
	v := NewValidator(id.Sequence("e"))
	d := model.EntryDraft{
		Date: time.Date(2025, 3, 10, 17, 45, 0, 0, time.FixedZone("PET", -5*3600)),
		Lines: []model.JournalLine{
			{AccountCode: " 6011 ", Debit: dec("10"), Description: "  compra "},
			{AccountCode: "1011\t", Credit: dec("10")},
		},
	}

	got, err := v.Validate(d)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 3, 10), got.Date, "date is truncated to the calendar day")
	assert.Equal(t, "6011", got.Lines[0].AccountCode)
	assert.Equal(t, "compra", got.Lines[0].Description)
	assert.Equal(t, "1011", got.Lines[1].AccountCode)
	assert.Equal(t, " 6011 ", d.Lines[0].AccountCode, "draft is not mutated")
}

func TestValidate_Unbalanced(t *testing.T) {
	v := NewValidator(nil)

	_, err := v.Validate(draft(debit("6011", "500"), credit("1011", "400")))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnbalanced)
	assert.Contains(t, err.Error(), "debits (500.00) != credits (400.00)")
}

func TestValidate_ThirdsBalanceAfterRounding(t *testing.T) {
	v := NewValidator(nil)

	third := dec("100").Div(dec("3"))
	d := draft(
		debit("6011", "100"),
		model.JournalLine{AccountCode: "1011", Credit: third},
		model.JournalLine{AccountCode: "1041", Credit: third},
		model.JournalLine{AccountCode: "1211", Credit: third},
	)
	_, err := v.Validate(d)
	assert.NoError(t, err)
}

func TestValidate_SubCentDifferenceRejected(t *testing.T) {
	v := NewValidator(nil)

	_, err := v.Validate(draft(debit("6011", "100.00"), credit("1011", "99.99")))
	assert.ErrorIs(t, err, model.ErrUnbalanced)
}

func TestValidate_IncompleteLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []model.JournalLine
	}{
		{"missing account", []model.JournalLine{debit("", "10"), credit("1011", "10")}},
		{"blank account", []model.JournalLine{debit("   ", "10"), credit("1011", "10")}},
		{"zero amounts", []model.JournalLine{debit("6011", "10"), credit("1011", "10"), {AccountCode: "1041"}}},
		{"sub-cent amount", []model.JournalLine{debit("6011", "10"), credit("1011", "10"), debit("1041", "0.001")}},
		{"negative", []model.JournalLine{debit("6011", "-10"), credit("1011", "-10")}},
		{"single line", []model.JournalLine{debit("6011", "0")}},
		{"no lines", nil},
	}
	v := NewValidator(nil)
	for _, tt := range tests {
		_, err := v.Validate(draft(tt.lines...))
		assert.ErrorIs(t, err, model.ErrIncompleteLine, tt.name)
	}
}

func TestValidate_IncompleteLineReportsPosition(t *testing.T) {
	v := NewValidator(nil)

	_, err := v.Validate(draft(debit("6011", "10"), credit("", "10")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestValidate_MissingDate(t *testing.T) {
	v := NewValidator(nil)

	_, err := v.Validate(model.EntryDraft{Lines: []model.JournalLine{debit("6011", "1"), credit("1011", "1")}})
	assert.ErrorIs(t, err, model.ErrMissingRequiredField)
}

func TestValidate_BothSidesOnOneLineIsPermitted(t *testing.T) {
	v := NewValidator(nil)

	_, err := v.Validate(draft(
		model.JournalLine{AccountCode: "6011", Debit: dec("10"), Credit: dec("5")},
		credit("1011", "5"),
	))
	assert.NoError(t, err)
}
