package prompt

import (
	"strings"
	"testing"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/insight"
	"github.com/lyralearn/workshop-backend/internal/selection"
)

func talentWorkshop(t *testing.T) *catalog.Workshop {
	t.Helper()
	w, ok := catalog.New().Workshop("carmen-talent-acquisition")
	if !ok {
		t.Fatal("workshop missing")
	}
	return w
}

func TestAssembleKeepsDeclaredOrder(t *testing.T) {
	w := talentWorkshop(t)
	sel := map[string]selection.Selection{
		"roles": selection.MultiChoice{OptionIDs: []string{"software-engineer"}},
		"goals": selection.MultiChoice{OptionIDs: []string{"reduce-bias"}},
	}
	segs := Assemble(w, insight.Extract(w, sel))

	ids := make([]string, 0, len(segs))
	for _, s := range segs {
		ids = append(ids, s.ID)
	}
	want := "context,roles,challenges,strategies,goals,format"
	if got := strings.Join(ids, ","); got != want {
		t.Fatalf("segment order: got %s, want %s", got, want)
	}
	if segs[0].Value == "" || !segs[0].Required {
		t.Fatal("static context segment must always carry its value")
	}
	if segs[2].Value != "" {
		t.Fatalf("challenges has no selection, want empty value, got %q", segs[2].Value)
	}
	if segs[1].Value != "Hiring for: Software Engineer" {
		t.Fatalf("roles segment: %q", segs[1].Value)
	}
}

func TestFinalOmitsEmptySegments(t *testing.T) {
	w := talentWorkshop(t)
	sel := map[string]selection.Selection{
		"roles": selection.MultiChoice{OptionIDs: []string{"software-engineer"}},
	}
	final := Final(Assemble(w, insight.Extract(w, sel)))

	if strings.Contains(final, "\n\n\n") {
		t.Fatal("empty segments left extra separators behind")
	}
	if strings.Contains(final, "Challenges:") {
		t.Fatal("empty category leaked into the final prompt")
	}
	parts := strings.Split(final, "\n\n")
	if len(parts) != 3 { // context, roles, format
		t.Fatalf("got %d parts: %q", len(parts), final)
	}
	if !strings.HasPrefix(parts[0], "Carmen creates compassionate") {
		t.Fatalf("context first: %q", parts[0])
	}
	if !strings.HasPrefix(parts[len(parts)-1], "Create a structured hiring strategy") {
		t.Fatalf("format last: %q", parts[len(parts)-1])
	}
}

func TestFinalIdenticalForIdenticalSelections(t *testing.T) {
	w := talentWorkshop(t)
	sel := map[string]selection.Selection{
		"roles":      selection.MultiChoice{OptionIDs: []string{"program-manager", "data-analyst"}},
		"challenges": selection.MultiChoice{OptionIDs: []string{"bias-in-process"}},
	}
	a := Final(Assemble(w, insight.Extract(w, sel)))
	b := Final(Assemble(w, insight.Extract(w, sel)))
	if a != b {
		t.Fatal("prompt assembly is not deterministic")
	}
}
