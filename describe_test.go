package settings

import (
	"errors"
	"testing"
)

func TestDescribeListsOptionsInCreationOrder(t *testing.T) {
	m, err := New([]Pair{
		{Name: "theme", Value: "light"},
		{Name: "retries", Value: 3},
		{Name: "ratio", Value: 0.5},
	},
		WithRule("theme", Enumerated("light", "dark")),
		WithRule("retries", Range(0, 10)),
	)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	descriptors := m.Describe()
	if len(descriptors) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(descriptors))
	}

	theme := descriptors[0]
	if theme.Name != "theme" || theme.Type != "string" || theme.Default != "light" {
		t.Fatalf("unexpected theme descriptor: %+v", theme)
	}
	if !theme.Constrained || theme.RuleKind != RuleKindEnumerated {
		t.Fatalf("expected enumerated constraint on theme, got %+v", theme)
	}

	retries := descriptors[1]
	if retries.Name != "retries" || retries.Type != "int" {
		t.Fatalf("unexpected retries descriptor: %+v", retries)
	}
	if !retries.Constrained || retries.RuleKind != RuleKindRange {
		t.Fatalf("expected range constraint on retries, got %+v", retries)
	}

	ratio := descriptors[2]
	if ratio.Name != "ratio" || ratio.Type != "float64" {
		t.Fatalf("unexpected ratio descriptor: %+v", ratio)
	}
	if ratio.Constrained || ratio.RuleKind != "" {
		t.Fatalf("expected unconstrained ratio, got %+v", ratio)
	}
}

func TestDescribeNilDefaultReportsNilType(t *testing.T) {
	m, err := New([]Pair{
		{Name: "token", Value: nil},
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	descriptors := m.Describe()
	if descriptors[0].Type != "nil" {
		t.Fatalf("expected nil type, got %q", descriptors[0].Type)
	}

	if err := m.SetValue("token", "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	descriptors = m.Describe()
	if descriptors[0].Type != "string" {
		t.Fatalf("expected type to follow current value, got %q", descriptors[0].Type)
	}
	if descriptors[0].Default != nil {
		t.Fatalf("expected default to stay nil, got %v", descriptors[0].Default)
	}
}

func TestDescribeReturnsDetachedDefaults(t *testing.T) {
	m, err := New([]Pair{
		{Name: "palette", Value: map[string]any{"primary": "blue"}},
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	descriptors := m.Describe()
	inner, ok := descriptors[0].Default.(map[string]any)
	if !ok {
		t.Fatalf("expected map default, got %T", descriptors[0].Default)
	}
	inner["primary"] = "red"

	fresh, err := m.Default("palette")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if fresh.(map[string]any)["primary"] != "blue" {
		t.Fatalf("descriptor mutation leaked into store")
	}
}

func TestExplainTracksModification(t *testing.T) {
	m, err := New([]Pair{
		{Name: "theme", Value: "light"},
	},
		WithRule("theme", Enumerated("light", "dark")),
	)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	p, err := m.Explain("theme")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if p.Modified {
		t.Fatalf("expected pristine option to be unmodified")
	}
	if p.Value != "light" || p.Default != "light" {
		t.Fatalf("unexpected provenance values: %+v", p)
	}
	if p.RuleKind != RuleKindEnumerated {
		t.Fatalf("expected rule kind, got %q", p.RuleKind)
	}
	if p.ManagerID != m.ID() || p.Revision != 1 {
		t.Fatalf("expected manager identity on provenance, got %+v", p)
	}

	if err := m.SetValue("theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	p, err = m.Explain("theme")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !p.Modified {
		t.Fatalf("expected modified flag after set")
	}
	if p.Value != "dark" || p.Default != "light" {
		t.Fatalf("unexpected provenance after set: %+v", p)
	}
	if p.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", p.Revision)
	}
}

func TestExplainRevertedValueIsUnmodified(t *testing.T) {
	m, err := New([]Pair{
		{Name: "retries", Value: 3},
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := m.SetValue("retries", 5); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := m.SetValue("retries", 3); err != nil {
		t.Fatalf("set back: %v", err)
	}
	p, err := m.Explain("retries")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if p.Modified {
		t.Fatalf("expected value equal to default to read unmodified")
	}
}

func TestExplainUnknownOption(t *testing.T) {
	m, err := New([]Pair{{Name: "theme", Value: "light"}})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if _, err := m.Explain("ghost"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected unknown option error, got %v", err)
	}
}

func TestExplainCarriesCloneLineage(t *testing.T) {
	parent, err := New([]Pair{{Name: "theme", Value: "light"}})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	child, err := parent.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	p, err := child.Explain("theme")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if p.ClonedFrom != parent.ID() {
		t.Fatalf("expected lineage %q, got %q", parent.ID(), p.ClonedFrom)
	}
}

func TestProvenanceJSONRoundTrip(t *testing.T) {
	m, err := New([]Pair{
		{Name: "theme", Value: "light"},
	},
		WithRule("theme", Enumerated("light", "dark")),
	)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := m.SetValue("theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}

	p, err := m.Explain("theme")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	payload, err := p.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	decoded, err := ProvenanceFromJSON(payload)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if decoded.Option != "theme" || decoded.Value != "dark" || decoded.Default != "light" {
		t.Fatalf("unexpected round trip: %+v", decoded)
	}
	if !decoded.Modified || decoded.RuleKind != RuleKindEnumerated {
		t.Fatalf("expected flags to survive round trip: %+v", decoded)
	}
	if decoded.ManagerID != m.ID() || decoded.Revision != 2 {
		t.Fatalf("expected identity to survive round trip: %+v", decoded)
	}
}
