package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func purchase(id string) model.JournalEntry {
	return model.JournalEntry{
		ID:   id,
		Date: date(2025, 3, 10),
		Lines: []model.JournalLine{
			{AccountCode: "6011", Debit: dec("1000.00"), Description: "Compra de mercadería"},
			{AccountCode: "1011", Credit: dec("1000.00"), Description: "Pago en efectivo, caja \"chica\""},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	entries := []model.JournalEntry{
		purchase("e1"),
		{
			ID:   "e2",
			Date: date(2025, 3, 11),
			Lines: []model.JournalLine{
				{AccountCode: "1212", Debit: dec("1500")},
				{AccountCode: "7011", Credit: dec("1500")},
				{AccountCode: "6911", Debit: dec("1000")},
				{AccountCode: "6011", Credit: dec("1000")},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(entries, got, decimalEqual); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, []model.JournalEntry{purchase("e1")}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "e1,2025-03-10,6011,Compra de mercadería,1000,", lines[1])
	assert.Equal(t, `e1,2025-03-10,1011,"Pago en efectivo, caja ""chica""",,1000`, lines[2])
}

func TestReadGroupsRowsByEntry(t *testing.T) {
	input := Header + "\n" +
		"a,2025-01-01,6011,,10,\n" +
		"b,2025-01-02,6211,,5,\n" +
		"a,2025-01-01,1011,,,10\n" +
		"b,2025-01-02,1011,,,5\n"

	got, err := ReadEntries(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Len(t, got[0].Lines, 2)
	assert.Equal(t, "1011", got[0].Lines[1].AccountCode)
	assert.Equal(t, "b", got[1].ID)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad date", Header + "\na,2025-13-01,6011,,10,\n"},
		{"bad debit", Header + "\na,2025-01-01,6011,,ten,\n"},
		{"bad credit", Header + "\na,2025-01-01,6011,,,x\n"},
		{"missing id", Header + "\n,2025-01-01,6011,,10,\n"},
		{"field count", Header + "\na,2025-01-01,6011\n"},
		{"conflicting dates", Header + "\na,2025-01-01,6011,,10,\na,2025-01-02,1011,,,10\n"},
	}
	for _, tt := range tests {
		_, err := ReadEntries(strings.NewReader(tt.input))
		assert.Error(t, err, tt.name)
	}
}

func TestReadEmpty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
