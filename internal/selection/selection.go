package selection

import "github.com/lyralearn/workshop-backend/internal/catalog"

// Selection is the closed set of answer shapes a category can hold.
// Values are immutable once returned from the store.
type Selection interface {
	Kind() catalog.Kind
	Empty() bool
}

// SingleChoice holds at most one option ID.
type SingleChoice struct {
	OptionID string `json:"option_id,omitempty"`
}

func (s SingleChoice) Kind() catalog.Kind { return catalog.KindSingleChoice }
func (s SingleChoice) Empty() bool        { return s.OptionID == "" }

// MultiChoice holds an ordered set of option IDs bounded by the
// category's max selections.
type MultiChoice struct {
	OptionIDs []string `json:"option_ids"`
}

func (m MultiChoice) Kind() catalog.Kind { return catalog.KindMultiChoice }
func (m MultiChoice) Empty() bool        { return len(m.OptionIDs) == 0 }

// Contains reports whether the option is already selected.
func (m MultiChoice) Contains(optionID string) bool {
	for _, id := range m.OptionIDs {
		if id == optionID {
			return true
		}
	}
	return false
}

// Ranking holds a full permutation of the category's cards.
type Ranking struct {
	CardIDs []string `json:"card_ids"`
}

func (r Ranking) Kind() catalog.Kind { return catalog.KindRanking }
func (r Ranking) Empty() bool        { return len(r.CardIDs) == 0 }

// Scalar holds one bounded numeric answer.
type Scalar struct {
	Value int  `json:"value"`
	Set   bool `json:"set"`
}

func (s Scalar) Kind() catalog.Kind { return catalog.KindScalar }
func (s Scalar) Empty() bool        { return !s.Set }

// FreeText holds one free-form answer. Blank-after-trim counts as empty.
type FreeText struct {
	Text string `json:"text,omitempty"`
}

func (f FreeText) Kind() catalog.Kind { return catalog.KindFreeText }
func (f FreeText) Empty() bool        { return trimmed(f.Text) == "" }
