// Package prompt turns workshop insights into an ordered list of
// prompt segments and a final prompt string.
package prompt

import (
	"strings"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/insight"
)

// Segment is one assembled slot of the prompt. Segments keep their
// workshop-declared order; optional segments with no content carry an
// empty value and are dropped from the final prompt.
type Segment struct {
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Value    string              `json:"value"`
	Type     catalog.SegmentType `json:"type"`
	ColorTag string              `json:"color_tag"`
	Required bool                `json:"required"`
}

// Assemble fills the workshop's segment specs from the extracted
// insights. Static segments always carry their declared value; derived
// segments join the insights of their source categories, one per line.
func Assemble(w *catalog.Workshop, insights []insight.Insight) []Segment {
	byCategory := make(map[string][]string)
	for _, in := range insights {
		byCategory[in.CategoryID] = append(byCategory[in.CategoryID], in.Text)
	}

	out := make([]Segment, 0, len(w.Segments))
	for _, spec := range w.Segments {
		seg := Segment{
			ID:       spec.ID,
			Label:    spec.Label,
			Type:     spec.Type,
			ColorTag: spec.ColorTag,
			Required: spec.Required,
		}
		if spec.Static != "" {
			seg.Value = spec.Static
		} else {
			var lines []string
			for _, catID := range spec.Categories {
				lines = append(lines, byCategory[catID]...)
			}
			seg.Value = strings.Join(lines, "\n")
		}
		out = append(out, seg)
	}
	return out
}

// Final joins non-empty segment values with blank lines. Empty optional
// segments vanish without leaving separators behind.
func Final(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg.Value) == "" {
			continue
		}
		parts = append(parts, seg.Value)
	}
	return strings.Join(parts, "\n\n")
}
