// Package insight derives human-readable context lines from workshop
// selections. Extraction is pure: the same selections always yield the
// same insights, in category declaration order, and empty selections
// contribute nothing.
package insight

import (
	"fmt"
	"strings"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/selection"
)

// Insight is one derived context line, tagged with the category that
// produced it so the prompt assembler can route it to a segment.
type Insight struct {
	CategoryID string `json:"category_id"`
	Text       string `json:"text"`
}

// Extract derives insights from a selection snapshot against the
// workshop definition.
func Extract(w *catalog.Workshop, sel map[string]selection.Selection) []Insight {
	var out []Insight
	for i := range w.Categories {
		cat := &w.Categories[i]
		cur, ok := sel[cat.ID]
		if !ok || cur.Empty() {
			continue
		}
		switch v := cur.(type) {
		case selection.SingleChoice:
			if opt, ok := cat.Option(v.OptionID); ok {
				out = append(out, Insight{cat.ID, fmt.Sprintf("%s: %s", cat.Label, opt.Label)})
			}
		case selection.MultiChoice:
			out = append(out, Insight{cat.ID, fmt.Sprintf("%s: %s", cat.Label, joinLabels(cat, v.OptionIDs))})
		case selection.Ranking:
			out = append(out, rankingInsights(cat, v)...)
		case selection.Scalar:
			out = append(out, Insight{cat.ID, fmt.Sprintf("%s: %d/%d", cat.Label, v.Value, cat.Max)})
		case selection.FreeText:
			out = append(out, Insight{cat.ID, fmt.Sprintf("%s: %s", cat.Label, strings.TrimSpace(v.Text))})
		}
	}
	return out
}

// Strings flattens insights to their text lines.
func Strings(insights []Insight) []string {
	out := make([]string, 0, len(insights))
	for _, in := range insights {
		out = append(out, in.Text)
	}
	return out
}

func rankingInsights(cat *catalog.Category, r selection.Ranking) []Insight {
	var out []Insight

	topK := cat.TopK
	if topK > len(r.CardIDs) {
		topK = len(r.CardIDs)
	}
	if topK > 0 {
		out = append(out, Insight{cat.ID, fmt.Sprintf("Top %d priorities: %s", topK, joinLabels(cat, r.CardIDs[:topK]))})
	}

	if tag, count := modalTag(cat, r.CardIDs); tag != "" {
		noun := "cards"
		if count == 1 {
			noun = "card"
		}
		out = append(out, Insight{cat.ID, fmt.Sprintf("Primary focus area: %s (%d %s)", tag, count, noun)})
	}

	high := 0
	for _, id := range r.CardIDs {
		if opt, ok := cat.Option(id); ok && opt.Meta != nil && opt.Meta.Impact == catalog.LevelHigh {
			high++
		}
	}
	out = append(out, Insight{cat.ID, fmt.Sprintf("High-impact cards: %d", high)})

	return out
}

// modalTag finds the most common card category tag. Ties resolve to the
// tag first encountered in ranked order, which keeps extraction stable.
func modalTag(cat *catalog.Category, cardIDs []string) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, id := range cardIDs {
		opt, ok := cat.Option(id)
		if !ok || opt.Meta == nil || opt.Meta.Category == "" {
			continue
		}
		if _, seen := counts[opt.Meta.Category]; !seen {
			order = append(order, opt.Meta.Category)
		}
		counts[opt.Meta.Category]++
	}
	best, bestCount := "", 0
	for _, tag := range order {
		if counts[tag] > bestCount {
			best, bestCount = tag, counts[tag]
		}
	}
	return best, bestCount
}

func joinLabels(cat *catalog.Category, ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if opt, ok := cat.Option(id); ok {
			labels = append(labels, opt.Label)
		}
	}
	return strings.Join(labels, ", ")
}
