package insight

import (
	"reflect"
	"testing"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/selection"
)

func workshop(t *testing.T, id string) *catalog.Workshop {
	t.Helper()
	w, ok := catalog.New().Workshop(id)
	if !ok {
		t.Fatalf("workshop %q missing", id)
	}
	return w
}

func TestExtractIsDeterministic(t *testing.T) {
	w := workshop(t, "carmen-talent-acquisition")
	sel := map[string]selection.Selection{
		"roles":      selection.MultiChoice{OptionIDs: []string{"data-analyst", "program-manager"}},
		"challenges": selection.MultiChoice{OptionIDs: []string{"lack-diversity"}},
		"goals":      selection.MultiChoice{OptionIDs: []string{"improve-diversity", "reduce-bias"}},
		"notes":      selection.FreeText{Text: "remote-first org"},
	}
	first := Extract(w, sel)
	second := Extract(w, sel)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated extraction differs:\n%v\n%v", first, second)
	}
	want := []string{
		"Hiring for: Data Analyst, Program Manager",
		"Challenges: Lack of Diversity",
		"Goals: Increase Diversity, Eliminate Bias",
		"Additional Context: remote-first org",
	}
	if got := Strings(first); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractSkipsEmptySelections(t *testing.T) {
	w := workshop(t, "carmen-talent-acquisition")
	sel := map[string]selection.Selection{
		"roles":      selection.MultiChoice{},
		"challenges": selection.MultiChoice{OptionIDs: []string{"bias-in-process"}},
		"notes":      selection.FreeText{Text: "   "},
	}
	got := Strings(Extract(w, sel))
	want := []string{"Challenges: Unconscious Bias"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRankingInsights(t *testing.T) {
	w := workshop(t, "carmen-engagement-builder")
	sel := map[string]selection.Selection{
		"initiatives": selection.Ranking{CardIDs: []string{
			"pulse-surveys",
			"career-conversations",
			"mentorship-pairs",
			"recognition-program",
			"flexible-work",
			"team-rituals",
		}},
		"team-energy": selection.Scalar{Value: 4, Set: true},
	}
	got := Strings(Extract(w, sel))
	want := []string{
		"Top 3 priorities: Monthly Pulse Surveys, Quarterly Career Conversations, Mentorship Pairing",
		"Primary focus area: development (2 cards)",
		"High-impact cards: 3",
		"Current team energy: 4/10",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestModalTagTieBreaksOnRankedOrder(t *testing.T) {
	w := workshop(t, "carmen-engagement-builder")
	// feedback and development both appear once in this subset; feedback
	// is encountered first, so it wins.
	sel := map[string]selection.Selection{
		"initiatives": selection.Ranking{CardIDs: []string{"pulse-surveys", "career-conversations"}},
	}
	got := Strings(Extract(w, sel))
	if got[1] != "Primary focus area: feedback (1 card)" {
		t.Fatalf("tie-break: got %q", got[1])
	}
}
