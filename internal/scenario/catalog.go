package scenario

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

//go:embed scenarios.yaml
var builtin []byte

// Scenario is a named, ready-made set of journal entries.
type Scenario struct {
	Slug        string
	Name        string
	Description string
	Entries     [][]model.JournalLine
}

// Drafts returns the scenario's entries as drafts dated on date.
func (s Scenario) Drafts(date time.Time) []model.EntryDraft {
	drafts := make([]model.EntryDraft, len(s.Entries))
	for i, lines := range s.Entries {
		drafts[i] = model.EntryDraft{Date: date, Lines: append([]model.JournalLine(nil), lines...)}
	}
	return drafts
}

// Catalog holds scenarios keyed by slug.
type Catalog struct {
	scenarios []Scenario
	bySlug    map[string]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{bySlug: make(map[string]int)}
}

// Register adds a scenario. Panics on duplicate slug.
func (c *Catalog) Register(s Scenario) {
	key := strings.ToLower(s.Slug)
	if _, ok := c.bySlug[key]; ok {
		panic("duplicate scenario: " + key)
	}
	c.bySlug[key] = len(c.scenarios)
	c.scenarios = append(c.scenarios, s)
}

// Get looks a scenario up by slug or display name, ignoring case.
func (c *Catalog) Get(name string) (Scenario, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, ok := c.bySlug[key]; ok {
		return c.scenarios[i], true
	}
	for _, s := range c.scenarios {
		if strings.EqualFold(s.Name, key) {
			return s, true
		}
	}
	return Scenario{}, false
}

// All returns scenarios in catalog order.
func (c *Catalog) All() []Scenario {
	return append([]Scenario(nil), c.scenarios...)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in scenarios: %v", err))
	}
	return c
}

type catalogFile struct {
	Scenarios []scenarioFile `yaml:"scenarios"`
}

type scenarioFile struct {
	Slug        string      `yaml:"slug"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Entries     []entryFile `yaml:"entries"`
}

type entryFile struct {
	Lines []lineFile `yaml:"lines"`
}

type lineFile struct {
	Account     string `yaml:"account"`
	Debit       string `yaml:"debit"`
	Credit      string `yaml:"credit"`
	Description string `yaml:"description"`
}

// Parse reads a scenario catalog in YAML form.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}

	c := NewCatalog()
	for _, sf := range f.Scenarios {
		if sf.Slug == "" {
			return nil, fmt.Errorf("scenario %q: missing slug", sf.Name)
		}
		if _, dup := c.bySlug[strings.ToLower(sf.Slug)]; dup {
			return nil, fmt.Errorf("scenario %q: duplicate slug", sf.Slug)
		}
		s := Scenario{Slug: sf.Slug, Name: sf.Name, Description: sf.Description}
		for i, ef := range sf.Entries {
			lines := make([]model.JournalLine, len(ef.Lines))
			for j, lf := range ef.Lines {
				line, err := lf.toLine()
				if err != nil {
					return nil, fmt.Errorf("scenario %s entry %d line %d: %w", sf.Slug, i+1, j+1, err)
				}
				lines[j] = line
			}
			s.Entries = append(s.Entries, lines)
		}
		c.Register(s)
	}
	return c, nil
}

func (lf lineFile) toLine() (model.JournalLine, error) {
	debit, err := parseAmount(lf.Debit)
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("parsing debit %q: %w", lf.Debit, err)
	}
	credit, err := parseAmount(lf.Credit)
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("parsing credit %q: %w", lf.Credit, err)
	}
	return model.JournalLine{
		AccountCode: lf.Account,
		Debit:       debit,
		Credit:      credit,
		Description: lf.Description,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
