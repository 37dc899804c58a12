// Package strategy builds the structured document presented after
// generation. The executive summary comes from the generated text;
// action items, timeline, metrics, and resources are deterministic
// scaffolds parameterized by the user's selections.
package strategy

// ActionItem is one concrete next step.
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Timeframe   string `json:"timeframe"`
	Owner       string `json:"owner"`
}

// Phase is one stretch of the rollout timeline.
type Phase struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Metric is one success measure with its target.
type Metric struct {
	Name        string `json:"name"`
	Target      string `json:"target"`
	Description string `json:"description"`
}

// Resource is a downloadable artifact. Slug names the export file.
type Resource struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Document is the full synthesized strategy.
type Document struct {
	ExecutiveSummary string       `json:"executive_summary"`
	FullText         string       `json:"full_text"`
	ActionItems      []ActionItem `json:"action_items"`
	Timeline         []Phase      `json:"timeline"`
	Metrics          []Metric     `json:"metrics"`
	Resources        []Resource   `json:"resources"`

	// Derived from the selections that produced the document.
	RolesTargeted   int `json:"roles_targeted"`
	TotalSelections int `json:"total_selections"`
}
