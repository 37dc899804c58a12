package selection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lyralearn/workshop-backend/internal/catalog"
)

func testWorkshop() *catalog.Workshop {
	c := catalog.New()
	w, ok := c.Workshop("carmen-talent-acquisition")
	if !ok {
		panic("talent acquisition workshop missing")
	}
	return w
}

func rankingWorkshop() *catalog.Workshop {
	c := catalog.New()
	w, ok := c.Workshop("carmen-engagement-builder")
	if !ok {
		panic("engagement builder workshop missing")
	}
	return w
}

func TestToggleBoundAndUnknownOption(t *testing.T) {
	s := NewStore(testWorkshop())

	if _, err := s.Toggle("goals", "faster-hiring"); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if _, err := s.Toggle("goals", "better-quality"); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	// The goals category is capped at two.
	_, err := s.Toggle("goals", "improve-diversity")
	if !errors.Is(err, ErrSelectionRejected) {
		t.Fatalf("overflow: got %v, want ErrSelectionRejected", err)
	}

	// Options outside the catalog are rejected the same way.
	_, err = s.Toggle("goals", "ship-faster")
	if !errors.Is(err, ErrSelectionRejected) {
		t.Fatalf("unknown option: got %v, want ErrSelectionRejected", err)
	}

	got, err := s.Get("goals")
	if err != nil {
		t.Fatal(err)
	}
	want := MultiChoice{OptionIDs: []string{"faster-hiring", "better-quality"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rejected calls mutated the store: got %+v", got)
	}
}

func TestToggleRemovesExisting(t *testing.T) {
	s := NewStore(testWorkshop())
	if _, err := s.Toggle("roles", "data-analyst"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Toggle("roles", "data-analyst")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Empty() {
		t.Fatalf("toggle did not remove: %+v", got)
	}
}

func TestMovePreservesRelativeOrder(t *testing.T) {
	s := NewStore(rankingWorkshop())

	got, err := s.Move("initiatives", "pulse-surveys", 0)
	if err != nil {
		t.Fatal(err)
	}
	r := got.(Ranking)
	want := []string{
		"pulse-surveys",
		"recognition-program",
		"career-conversations",
		"flexible-work",
		"team-rituals",
		"mentorship-pairs",
	}
	if !reflect.DeepEqual(r.CardIDs, want) {
		t.Fatalf("got %v, want %v", r.CardIDs, want)
	}

	// Out-of-range target clamps to the last slot.
	got, err = s.Move("initiatives", "pulse-surveys", 99)
	if err != nil {
		t.Fatal(err)
	}
	r = got.(Ranking)
	if r.CardIDs[len(r.CardIDs)-1] != "pulse-surveys" {
		t.Fatalf("clamp failed: %v", r.CardIDs)
	}

	_, err = s.Move("initiatives", "ghost-card", 0)
	if !errors.Is(err, ErrSelectionRejected) {
		t.Fatalf("unknown card: got %v, want ErrSelectionRejected", err)
	}
}

func TestScalarBounds(t *testing.T) {
	s := NewStore(rankingWorkshop())
	if _, err := s.SetScalar("team-energy", 7); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetScalar("team-energy", 11); !errors.Is(err, ErrSelectionRejected) {
		t.Fatalf("got %v, want ErrSelectionRejected", err)
	}
	got, err := s.Get("team-energy")
	if err != nil {
		t.Fatal(err)
	}
	if sc := got.(Scalar); sc.Value != 7 {
		t.Fatalf("rejected write mutated scalar: %+v", sc)
	}
}

func TestFreeTextTrimsAndBlankIsEmpty(t *testing.T) {
	s := NewStore(testWorkshop())
	got, err := s.SetFreeText("notes", "  remote-first org  ")
	if err != nil {
		t.Fatal(err)
	}
	if ft := got.(FreeText); ft.Text != "remote-first org" {
		t.Fatalf("got %q", ft.Text)
	}
	got, err = s.SetFreeText("notes", "   ")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Empty() {
		t.Fatal("whitespace-only text should be empty")
	}
}

func TestCompleteRequiresEveryRequiredCategory(t *testing.T) {
	s := NewStore(testWorkshop())
	if s.Complete() {
		t.Fatal("empty store reported complete")
	}
	mustToggle := func(cat, opt string) {
		t.Helper()
		if _, err := s.Toggle(cat, opt); err != nil {
			t.Fatal(err)
		}
	}
	mustToggle("roles", "program-manager")
	mustToggle("challenges", "long-time-to-hire")
	if s.Complete() {
		t.Fatal("complete without goals")
	}
	mustToggle("goals", "faster-hiring")
	if !s.Complete() {
		t.Fatal("all required categories answered, still incomplete")
	}
}

func TestResetReseedsRankings(t *testing.T) {
	s := NewStore(rankingWorkshop())
	if _, err := s.Move("initiatives", "mentorship-pairs", 0); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	got, err := s.Get("initiatives")
	if err != nil {
		t.Fatal(err)
	}
	r := got.(Ranking)
	if r.CardIDs[0] != "recognition-program" {
		t.Fatalf("reset did not restore catalog order: %v", r.CardIDs)
	}
}
