package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

const minLines = 2

// Validator gates entries into the Store.
type Validator struct {
	newID id.Generator
}

// NewValidator creates a Validator. A nil generator falls back to random UUIDs.
func NewValidator(gen id.Generator) *Validator {
	if gen == nil {
		gen = id.NewEntryID
	}
	return &Validator{newID: gen}
}

// Validate checks a draft and returns the normalized entry with a fresh ID.
//
// Debit and credit totals are rounded to cents before they are compared, so
// legitimate splits such as thirds of a sum still balance.
func (v *Validator) Validate(draft model.EntryDraft) (model.JournalEntry, error) {
	if len(draft.Lines) < minLines {
		return model.JournalEntry{}, model.Invalid(model.ErrIncompleteLine, "", "entry needs at least %d lines, got %d", minLines, len(draft.Lines))
	}
	if draft.Date.IsZero() {
		return model.JournalEntry{}, model.Invalid(model.ErrMissingRequiredField, "", "entry date is required")
	}

	debit, credit := model.SumLines(draft.Lines)
	if !model.Cents(debit).Equal(model.Cents(credit)) {
		return model.JournalEntry{}, model.Invalid(model.ErrUnbalanced, draft.Date.Format(model.DateFormat),
			"debits (%s) != credits (%s)", debit.StringFixed(2), credit.StringFixed(2))
	}

	lines := make([]model.JournalLine, len(draft.Lines))
	for i, l := range draft.Lines {
		l.AccountCode = strings.TrimSpace(l.AccountCode)
		l.Description = strings.TrimSpace(l.Description)

		ref := lineRef(i)
		switch {
		case l.AccountCode == "":
			return model.JournalEntry{}, model.Invalid(model.ErrIncompleteLine, ref, "account code is required")
		case l.Debit.IsNegative() || l.Credit.IsNegative():
			return model.JournalEntry{}, model.Invalid(model.ErrIncompleteLine, ref, "amounts must not be negative")
		case model.Cents(l.Debit).IsZero() && model.Cents(l.Credit).IsZero():
			return model.JournalEntry{}, model.Invalid(model.ErrIncompleteLine, ref, "line needs a debit or credit amount")
		}
		lines[i] = l
	}

	y, m, d := draft.Date.Date()
	return model.JournalEntry{
		ID:    v.newID(),
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Lines: lines,
	}, nil
}

func lineRef(i int) string {
	return "line " + strconv.Itoa(i+1)
}
