package strategy

import (
	"fmt"
	"strings"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/selection"
)

// DefaultSummary is used when the generated text has no usable lines.
const DefaultSummary = "Your personalized strategy combines Carmen's compassionate AI approach " +
	"with industry best practices to create an inclusive, effective plan."

// Synthesize builds a Document from the generated text and the
// selections that produced it. The same inputs always yield the same
// document.
func Synthesize(generated string, w *catalog.Workshop, sel map[string]selection.Selection) *Document {
	labels := selectedLabels(w, sel)
	primary := primaryLabel(w, sel)

	return &Document{
		ExecutiveSummary: executiveSummary(generated),
		FullText:         generated,
		ActionItems:      actionItems(primary),
		Timeline:         timeline(),
		Metrics:          metrics(),
		Resources:        resources(primary, labels),
		RolesTargeted:    countIn(w, sel, "roles"),
		TotalSelections:  totalSelections(sel),
	}
}

// executiveSummary joins the first three non-blank lines of the
// generated text. It never returns an empty string.
func executiveSummary(generated string) string {
	var lines []string
	for _, line := range strings.Split(generated, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
		if len(lines) == 3 {
			break
		}
	}
	if len(lines) == 0 {
		return DefaultSummary
	}
	return strings.Join(lines, " ")
}

func actionItems(primary string) []ActionItem {
	return []ActionItem{
		{
			Title:       "Audit Current Job Descriptions",
			Description: fmt.Sprintf("Review existing %s postings for biased language and update with inclusive, skills-focused requirements.", primary),
			Priority:    "high",
			Timeframe:   "Week 1",
			Owner:       "HR Team",
		},
		{
			Title:       "Implement Structured Interviews",
			Description: "Design consistent interview frameworks with behavioural and situational questions.",
			Priority:    "high",
			Timeframe:   "Week 2",
			Owner:       "Hiring Managers",
		},
		{
			Title:       "Set Up Bias-Free Screening",
			Description: "Establish objective candidate evaluation criteria and anonymous initial screening.",
			Priority:    "medium",
			Timeframe:   "Week 3",
			Owner:       "Talent Team",
		},
		{
			Title:       "Launch Candidate Experience Program",
			Description: "Create welcome sequences and feedback loops for all candidates.",
			Priority:    "medium",
			Timeframe:   "Week 4",
			Owner:       "Recruiting Team",
		},
	}
}

func timeline() []Phase {
	return []Phase{
		{Title: "Foundation Phase", Description: "Set up core infrastructure and processes", Duration: "Week 1-2"},
		{Title: "Implementation Phase", Description: "Roll out new screening and interview processes", Duration: "Week 3-4"},
		{Title: "Optimization Phase", Description: "Monitor results and refine based on feedback", Duration: "Week 5-6"},
		{Title: "Scale Phase", Description: "Expand successful practices across all roles", Duration: "Week 7+"},
	}
}

func metrics() []Metric {
	return []Metric{
		{Name: "Diverse Candidate Pipeline", Target: "+40%", Description: "Increase in underrepresented candidates progressing to final rounds"},
		{Name: "Time to Hire", Target: "-25%", Description: "Reduction in average days from application to offer"},
		{Name: "Candidate Experience Score", Target: "4.5/5", Description: "Average rating from candidate feedback surveys"},
		{Name: "Interview Consistency", Target: "95%", Description: "Percentage of interviews following structured format"},
		{Name: "Hiring Manager Satisfaction", Target: "90%", Description: "Percentage of managers satisfied with candidate quality"},
		{Name: "Bias Incident Reduction", Target: "-80%", Description: "Decrease in reported bias-related hiring concerns"},
	}
}

func resources(primary string, labels []string) []Resource {
	return []Resource{
		{
			Title:       "Inclusive Job Description Template",
			Slug:        "inclusive-job-description-template",
			Description: "Ready-to-use template with bias-free language and skills-focused requirements",
			Content:     jobDescriptionTemplate(primary),
		},
		{
			Title:       "Structured Interview Guide",
			Slug:        "structured-interview-guide",
			Description: "Complete framework with behavioural and situational questions",
			Content:     interviewGuide(primary),
		},
		{
			Title:       "Candidate Evaluation Rubric",
			Slug:        "candidate-evaluation-rubric",
			Description: "Objective scoring criteria for consistent candidate assessment",
			Content:     evaluationRubric(labels),
		},
		{
			Title:       "Diversity Sourcing Checklist",
			Slug:        "diversity-sourcing-checklist",
			Description: "Step-by-step guide for building diverse candidate pipelines",
			Content:     sourcingChecklist(),
		},
	}
}

func jobDescriptionTemplate(primary string) string {
	return fmt.Sprintf(`# %s - Job Description Template

## Company Overview
[Your inclusive company description here]

## Role Summary
We're seeking a talented %s to join our diverse team. This role offers growth opportunities and meaningful impact.

## Key Responsibilities
- [Primary responsibility focused on outcomes]
- [Secondary responsibility with growth potential]
- [Collaborative responsibility emphasizing teamwork]

## Required Skills
- [Must-have technical skill]
- [Must-have soft skill]
- [Problem-solving ability]

## What We Offer
- Competitive compensation and equity
- Professional development opportunities
- Flexible work arrangements
- Inclusive and supportive team culture

## Application Process
We welcome applications from all qualified candidates. If you need any accommodations during the application process, please let us know.

---
Generated using Carmen's Compassionate Hiring Framework`, primary, primary)
}

func interviewGuide(primary string) string {
	return fmt.Sprintf(`# Structured Interview Guide: %s

## Pre-Interview Setup
[ ] Review candidate's application materials
[ ] Prepare consistent questions for all candidates
[ ] Set up inclusive interview environment
[ ] Brief all interviewers on evaluation criteria

## Interview Structure (60 minutes)

### Opening (5 minutes)
- Welcome and introductions
- Brief company and role overview

### Behavioural Questions (25 minutes)
- Tell me about a time you solved a difficult problem.
- Describe a situation where you worked with a diverse team.
- How do you handle competing priorities?

### Role-Specific Scenarios (20 minutes)
- [Scenario tied to day-to-day responsibilities]
- [Scenario probing judgment under ambiguity]

### Candidate Questions (10 minutes)
- Leave generous time; how candidates ask is signal too.

## After the Interview
[ ] Score against the shared rubric before discussing
[ ] Submit written feedback within 24 hours`, primary)
}

func evaluationRubric(labels []string) string {
	focus := "the role requirements"
	if len(labels) > 0 {
		focus = strings.Join(labels, ", ")
	}
	return fmt.Sprintf(`# Candidate Evaluation Rubric

Score each dimension 1-5. Evaluate against: %s.

## Dimensions
1. Technical capability - demonstrable skills over credentials
2. Problem solving - approach, not just the answer
3. Collaboration - evidence of working well across differences
4. Growth orientation - learning from setbacks
5. Values alignment - adds to the culture rather than fitting a mold

## Rules
- Score independently before any group discussion.
- Cite specific evidence for every score.
- Flag any score you cannot support with an example.`, focus)
}

func sourcingChecklist() string {
	return `# Diversity Sourcing Checklist

[ ] Post to at least three channels beyond mainstream job boards
[ ] Partner with professional organizations serving underrepresented groups
[ ] Run job description through a bias-language check
[ ] Set pipeline diversity checkpoints before interviews begin
[ ] Track source-of-hire to learn which channels work
[ ] Review the funnel weekly for stage-by-stage drop-off patterns`
}

func primaryLabel(w *catalog.Workshop, sel map[string]selection.Selection) string {
	for i := range w.Categories {
		cat := &w.Categories[i]
		cur, ok := sel[cat.ID]
		if !ok || cur.Empty() {
			continue
		}
		switch v := cur.(type) {
		case selection.SingleChoice:
			if opt, ok := cat.Option(v.OptionID); ok {
				return opt.Label
			}
		case selection.MultiChoice:
			if opt, ok := cat.Option(v.OptionIDs[0]); ok {
				return opt.Label
			}
		}
	}
	return w.Title
}

func selectedLabels(w *catalog.Workshop, sel map[string]selection.Selection) []string {
	var out []string
	for i := range w.Categories {
		cat := &w.Categories[i]
		cur, ok := sel[cat.ID]
		if !ok || cur.Empty() {
			continue
		}
		switch v := cur.(type) {
		case selection.SingleChoice:
			if opt, ok := cat.Option(v.OptionID); ok {
				out = append(out, opt.Label)
			}
		case selection.MultiChoice:
			for _, id := range v.OptionIDs {
				if opt, ok := cat.Option(id); ok {
					out = append(out, opt.Label)
				}
			}
		}
	}
	return out
}

func countIn(w *catalog.Workshop, sel map[string]selection.Selection, categoryID string) int {
	cur, ok := sel[categoryID]
	if !ok {
		return 0
	}
	switch v := cur.(type) {
	case selection.SingleChoice:
		if v.OptionID != "" {
			return 1
		}
	case selection.MultiChoice:
		return len(v.OptionIDs)
	case selection.Ranking:
		return len(v.CardIDs)
	}
	return 0
}

func totalSelections(sel map[string]selection.Selection) int {
	total := 0
	for _, cur := range sel {
		switch v := cur.(type) {
		case selection.SingleChoice:
			if v.OptionID != "" {
				total++
			}
		case selection.MultiChoice:
			total += len(v.OptionIDs)
		case selection.Ranking:
			total += len(v.CardIDs)
		case selection.Scalar:
			if v.Set {
				total++
			}
		case selection.FreeText:
			if !v.Empty() {
				total++
			}
		}
	}
	return total
}
