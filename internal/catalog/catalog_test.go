package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinWorkshops(t *testing.T) {
	c := New()
	if got := len(c.Workshops()); got != 3 {
		t.Fatalf("builtin workshops=%d", got)
	}

	w, ok := c.Workshop("carmen-talent-acquisition")
	if !ok {
		t.Fatal("talent acquisition missing")
	}
	cat, ok := w.Category("goals")
	if !ok {
		t.Fatal("goals category missing")
	}
	if cat.MaxSelections != 2 {
		t.Fatalf("goals max=%d", cat.MaxSelections)
	}
	if cat.Kind != KindMultiChoice {
		t.Fatalf("goals kind=%s", cat.Kind)
	}

	if _, ok := c.Workshop("unknown"); ok {
		t.Fatal("lookup of unknown workshop succeeded")
	}
}

func TestSingleChoiceDefaultsToOneSelection(t *testing.T) {
	c := New()
	w, _ := c.Workshop("carmen-performance-insights")
	cat, ok := w.Category("team-size")
	if !ok {
		t.Fatal("team-size missing")
	}
	if cat.MaxSelections != 1 {
		t.Fatalf("single choice max=%d", cat.MaxSelections)
	}
}

func TestRankingDefaults(t *testing.T) {
	c := New()
	w, _ := c.Workshop("carmen-engagement-builder")
	cat, ok := w.Category("initiatives")
	if !ok {
		t.Fatal("initiatives missing")
	}
	if cat.TopK != 3 {
		t.Fatalf("topK=%d", cat.TopK)
	}
	if cat.MaxSelections != len(cat.Options) {
		t.Fatalf("ranking max=%d, options=%d", cat.MaxSelections, len(cat.Options))
	}
}

func TestCharacterFallsBackToDefault(t *testing.T) {
	c := New()
	if got := c.Character("carmen").Name; got != "Carmen Rodriguez" {
		t.Fatalf("carmen=%q", got)
	}
	if got := c.Character("nobody").Name; got != "Workshop Guide" {
		t.Fatalf("fallback=%q", got)
	}
}

func TestLoadFile(t *testing.T) {
	doc := `
workshops:
  - id: custom-onboarding
    title: Onboarding Workshop
    slug: onboarding
    character: carmen
    content_type: onboarding-plan
    topic: First-90-day onboarding
    categories:
      - id: team
        label: Team
        kind: single_choice
        required: true
        options:
          - id: eng
            label: Engineering
          - id: sales
            label: Sales
    segments:
      - id: context
        label: Context
        type: context
        color_tag: purple
        required: true
        static: Design a welcoming onboarding plan.
      - id: team
        label: Team
        type: data
        color_tag: blue
        categories: [team]
      - id: format
        label: Output Format
        type: format
        color_tag: gray
        required: true
        static: Produce a week-by-week onboarding plan.
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	w, ok := c.Workshop("custom-onboarding")
	if !ok {
		t.Fatal("loaded workshop missing")
	}
	cat, _ := w.Category("team")
	if cat.MaxSelections != 1 {
		t.Fatalf("loaded single choice max=%d", cat.MaxSelections)
	}
}

func TestLoadFileReplacesWorkshopByID(t *testing.T) {
	doc := `
workshops:
  - id: carmen-talent-acquisition
    title: Hiring Sprint
    slug: hiring-sprint
    character: carmen
    content_type: hiring-plan
    topic: Rapid hiring
    categories:
      - id: roles
        label: Roles
        kind: multi_choice
        max_selections: 1
        required: true
        options:
          - id: recruiter
            label: Recruiter
`
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	seen := 0
	for _, w := range c.Workshops() {
		if w.ID == "carmen-talent-acquisition" {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("workshop listed %d times after override merge", seen)
	}
	if got := len(c.Workshops()); got != 3 {
		t.Fatalf("workshops=%d after override merge", got)
	}
	w, _ := c.Workshop("carmen-talent-acquisition")
	if w.Title != "Hiring Sprint" {
		t.Fatalf("override title=%q", w.Title)
	}
}

func TestLoadFileRejectsBadDefinitions(t *testing.T) {
	bad := `
workshops:
  - id: broken
    categories:
      - id: picks
        label: Picks
        kind: multi_choice
        options:
          - id: a
            label: A
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := New().LoadFile(path); err == nil {
		t.Fatal("multi choice without max_selections must fail validation")
	}
}
