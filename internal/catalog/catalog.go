package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Level grades priority-card metadata.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Kind describes how a category collects its answer.
type Kind string

const (
	KindSingleChoice Kind = "single_choice"
	KindMultiChoice  Kind = "multi_choice"
	KindRanking      Kind = "ranking"
	KindScalar       Kind = "scalar"
	KindFreeText     Kind = "free_text"
)

// CardMeta carries the planning metadata attached to priority cards.
type CardMeta struct {
	Impact        Level    `json:"impact" yaml:"impact"`
	Effort        Level    `json:"effort" yaml:"effort"`
	Urgency       Level    `json:"urgency" yaml:"urgency"`
	Risk          Level    `json:"risk" yaml:"risk"`
	EstimatedTime int      `json:"estimated_time" yaml:"estimated_time"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Category      string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// OptionItem is one selectable answer. Items are defined at construction
// time and never mutated afterwards.
type OptionItem struct {
	ID          string    `json:"id" yaml:"id"`
	Label       string    `json:"label" yaml:"label"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Meta        *CardMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Category groups options under a selection rule.
type Category struct {
	ID            string       `json:"id" yaml:"id"`
	Label         string       `json:"label" yaml:"label"`
	Kind          Kind         `json:"kind" yaml:"kind"`
	Options       []OptionItem `json:"options,omitempty" yaml:"options,omitempty"`
	MaxSelections int          `json:"max_selections,omitempty" yaml:"max_selections,omitempty"`
	Required      bool         `json:"required" yaml:"required"`
	// TopK bounds how many leading ranked cards feed the priorities insight.
	TopK int `json:"top_k,omitempty" yaml:"top_k,omitempty"`
	// Scalar bounds.
	Min int `json:"min,omitempty" yaml:"min,omitempty"`
	Max int `json:"max,omitempty" yaml:"max,omitempty"`
}

// SegmentType tags a prompt segment's role.
type SegmentType string

const (
	SegmentContext     SegmentType = "context"
	SegmentData        SegmentType = "data"
	SegmentInstruction SegmentType = "instruction"
	SegmentFormat      SegmentType = "format"
)

// SegmentSpec declares one slot of a workshop's prompt. Declaration
// order is the assembly order.
type SegmentSpec struct {
	ID       string      `json:"id" yaml:"id"`
	Label    string      `json:"label" yaml:"label"`
	Type     SegmentType `json:"type" yaml:"type"`
	ColorTag string      `json:"color_tag" yaml:"color_tag"`
	Required bool        `json:"required" yaml:"required"`
	// Static is the fixed value for context/format segments.
	Static string `json:"static,omitempty" yaml:"static,omitempty"`
	// Categories lists the category IDs whose insights fill a derived segment.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Character is the guide persona a workshop speaks through.
type Character struct {
	Name        string `json:"name" yaml:"name"`
	Personality string `json:"personality" yaml:"personality"`
	Tone        string `json:"tone" yaml:"tone"`
	Expertise   string `json:"expertise" yaml:"expertise"`
	Model       string `json:"model" yaml:"model"`
}

// Workshop is a full guided-workshop definition.
type Workshop struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Slug        string        `json:"slug" yaml:"slug"`
	Character   string        `json:"character" yaml:"character"`
	ContentType string        `json:"content_type" yaml:"content_type"`
	Topic       string        `json:"topic" yaml:"topic"`
	Categories  []Category    `json:"categories" yaml:"categories"`
	Segments    []SegmentSpec `json:"segments" yaml:"segments"`
}

// Category finds a category by ID.
func (w *Workshop) Category(id string) (*Category, bool) {
	for i := range w.Categories {
		if w.Categories[i].ID == id {
			return &w.Categories[i], true
		}
	}
	return nil, false
}

// Option finds an option by ID.
func (c *Category) Option(id string) (*OptionItem, bool) {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i], true
		}
	}
	return nil, false
}

// OptionIDs returns the declared option order.
func (c *Category) OptionIDs() []string {
	out := make([]string, 0, len(c.Options))
	for i := range c.Options {
		out = append(out, c.Options[i].ID)
	}
	return out
}

// Catalog holds every workshop definition plus the character registry.
// It is constructed explicitly and passed where needed; there is no
// shared global instance.
type Catalog struct {
	workshops  []Workshop
	byID       map[string]*Workshop
	characters map[string]Character
}

// New builds the catalog with the built-in workshop definitions.
func New() *Catalog {
	c := &Catalog{
		byID:       make(map[string]*Workshop),
		characters: defaultCharacters(),
	}
	for _, w := range builtinWorkshops() {
		if err := validateWorkshop(&w); err != nil {
			panic(fmt.Sprintf("catalog: built-in workshop %q: %v", w.ID, err))
		}
		c.add(w)
	}
	return c
}

// add registers a workshop, replacing any existing definition with the
// same ID in place so the registration order is stable across merges.
func (c *Catalog) add(w Workshop) {
	replaced := false
	for i := range c.workshops {
		if c.workshops[i].ID == w.ID {
			c.workshops[i] = w
			replaced = true
			break
		}
	}
	if !replaced {
		c.workshops = append(c.workshops, w)
	}
	// Appends can reallocate, so the index is rebuilt against the
	// current backing array.
	c.byID = make(map[string]*Workshop, len(c.workshops))
	for i := range c.workshops {
		c.byID[c.workshops[i].ID] = &c.workshops[i]
	}
}

// Workshops lists definitions in registration order.
func (c *Catalog) Workshops() []Workshop {
	out := make([]Workshop, len(c.workshops))
	copy(out, c.workshops)
	return out
}

// Workshop looks a definition up by ID.
func (c *Catalog) Workshop(id string) (*Workshop, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// Character returns the persona for a character key, falling back to
// the default persona for unknown keys.
func (c *Catalog) Character(key string) Character {
	if ch, ok := c.characters[key]; ok {
		return ch
	}
	return c.characters["default"]
}

// LoadFile merges extra workshop definitions from a YAML file. Used for
// deployments that ship workshops outside the binary.
func (c *Catalog) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	var doc struct {
		Workshops []Workshop `yaml:"workshops"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse catalog file: %w", err)
	}
	for _, w := range doc.Workshops {
		if err := validateWorkshop(&w); err != nil {
			return fmt.Errorf("workshop %q: %w", w.ID, err)
		}
		c.add(w)
	}
	return nil
}

func validateWorkshop(w *Workshop) error {
	if w.ID == "" {
		return fmt.Errorf("missing id")
	}
	if len(w.Categories) == 0 {
		return fmt.Errorf("no categories")
	}
	seen := make(map[string]bool, len(w.Categories))
	for i := range w.Categories {
		cat := &w.Categories[i]
		if cat.ID == "" {
			return fmt.Errorf("category %d: missing id", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category %q", cat.ID)
		}
		seen[cat.ID] = true
		switch cat.Kind {
		case KindSingleChoice:
			cat.MaxSelections = 1
		case KindMultiChoice:
			if cat.MaxSelections <= 0 {
				return fmt.Errorf("category %q: multi choice needs max_selections", cat.ID)
			}
		case KindRanking:
			if cat.TopK <= 0 {
				cat.TopK = 3
			}
			if cat.MaxSelections == 0 {
				cat.MaxSelections = len(cat.Options)
			}
		case KindScalar:
			if cat.Max <= cat.Min {
				return fmt.Errorf("category %q: bad scalar bounds", cat.ID)
			}
		case KindFreeText:
		default:
			return fmt.Errorf("category %q: unknown kind %q", cat.ID, cat.Kind)
		}
	}
	formatSegments := 0
	for _, seg := range w.Segments {
		if seg.Type == SegmentFormat {
			formatSegments++
			if !seg.Required || seg.Static == "" {
				return fmt.Errorf("segment %q: format segments are required and static", seg.ID)
			}
		}
		for _, catID := range seg.Categories {
			if !seen[catID] {
				return fmt.Errorf("segment %q: unknown category %q", seg.ID, catID)
			}
		}
	}
	if len(w.Segments) > 0 && formatSegments == 0 {
		return fmt.Errorf("missing format segment")
	}
	return nil
}
