package selection

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lyralearn/workshop-backend/internal/catalog"
)

// ErrSelectionRejected signals a mutation that would break a category's
// selection rules. The store stays untouched; callers surface the
// rejection without treating it as a failure.
var ErrSelectionRejected = errors.New("selection rejected")

// ErrUnknownCategory signals a category ID the workshop does not define.
var ErrUnknownCategory = errors.New("unknown category")

func trimmed(s string) string { return strings.TrimSpace(s) }

// Store tracks the current selection per category for one workshop
// session. All mutations validate against the workshop definition
// before anything is stored, so the store never holds an option the
// catalog does not define and never exceeds a category's bound.
type Store struct {
	workshop *catalog.Workshop

	mu  sync.RWMutex
	cur map[string]Selection
}

// NewStore builds an empty store for a workshop. Ranking categories
// start with their cards in catalog order so reordering works without
// an explicit initialization step.
func NewStore(w *catalog.Workshop) *Store {
	s := &Store{workshop: w, cur: make(map[string]Selection, len(w.Categories))}
	for i := range w.Categories {
		cat := &w.Categories[i]
		if cat.Kind == catalog.KindRanking {
			s.cur[cat.ID] = Ranking{CardIDs: cat.OptionIDs()}
		}
	}
	return s
}

// Workshop returns the definition this store validates against.
func (s *Store) Workshop() *catalog.Workshop { return s.workshop }

// Get returns the current selection for a category. Categories without
// an answer yet return their kind's empty selection.
func (s *Store) Get(categoryID string) (Selection, error) {
	cat, ok := s.workshop.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cur, ok := s.cur[categoryID]; ok {
		return cur, nil
	}
	return emptyFor(cat.Kind), nil
}

// Snapshot returns a point-in-time copy of every category's selection,
// keyed by category ID and covering unset categories too.
func (s *Store) Snapshot() map[string]Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Selection, len(s.workshop.Categories))
	for i := range s.workshop.Categories {
		cat := &s.workshop.Categories[i]
		if cur, ok := s.cur[cat.ID]; ok {
			out[cat.ID] = cur
		} else {
			out[cat.ID] = emptyFor(cat.Kind)
		}
	}
	return out
}

// SetSingle replaces a single-choice answer.
func (s *Store) SetSingle(categoryID, optionID string) (Selection, error) {
	cat, err := s.category(categoryID, catalog.KindSingleChoice)
	if err != nil {
		return nil, err
	}
	if _, ok := cat.Option(optionID); !ok {
		return nil, fmt.Errorf("%w: option %q not in category %q", ErrSelectionRejected, optionID, categoryID)
	}
	next := SingleChoice{OptionID: optionID}
	s.put(categoryID, next)
	return next, nil
}

// Toggle adds an option to a multi-choice answer, or removes it when
// already present. Adding past the category bound is rejected and
// leaves the answer unchanged.
func (s *Store) Toggle(categoryID, optionID string) (Selection, error) {
	cat, err := s.category(categoryID, catalog.KindMultiChoice)
	if err != nil {
		return nil, err
	}
	if _, ok := cat.Option(optionID); !ok {
		return nil, fmt.Errorf("%w: option %q not in category %q", ErrSelectionRejected, optionID, categoryID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, _ := s.cur[categoryID].(MultiChoice)
	if cur.Contains(optionID) {
		next := MultiChoice{OptionIDs: without(cur.OptionIDs, optionID)}
		s.cur[categoryID] = next
		return next, nil
	}
	if len(cur.OptionIDs) >= cat.MaxSelections {
		return nil, fmt.Errorf("%w: category %q is limited to %d selections", ErrSelectionRejected, categoryID, cat.MaxSelections)
	}
	ids := make([]string, 0, len(cur.OptionIDs)+1)
	ids = append(ids, cur.OptionIDs...)
	ids = append(ids, optionID)
	next := MultiChoice{OptionIDs: ids}
	s.cur[categoryID] = next
	return next, nil
}

// SetMulti replaces a multi-choice answer wholesale. Duplicates,
// unknown options, and overflow are all rejected.
func (s *Store) SetMulti(categoryID string, optionIDs []string) (Selection, error) {
	cat, err := s.category(categoryID, catalog.KindMultiChoice)
	if err != nil {
		return nil, err
	}
	if len(optionIDs) > cat.MaxSelections {
		return nil, fmt.Errorf("%w: category %q is limited to %d selections", ErrSelectionRejected, categoryID, cat.MaxSelections)
	}
	seen := make(map[string]bool, len(optionIDs))
	for _, id := range optionIDs {
		if _, ok := cat.Option(id); !ok {
			return nil, fmt.Errorf("%w: option %q not in category %q", ErrSelectionRejected, id, categoryID)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrSelectionRejected, id)
		}
		seen[id] = true
	}
	ids := make([]string, len(optionIDs))
	copy(ids, optionIDs)
	next := MultiChoice{OptionIDs: ids}
	s.put(categoryID, next)
	return next, nil
}

// Move repositions one card in a ranking. The card is removed from its
// current slot and reinserted at the target index; every other card
// keeps its relative order. Out-of-range targets clamp to the ends.
func (s *Store) Move(categoryID, cardID string, toIndex int) (Selection, error) {
	if _, err := s.category(categoryID, catalog.KindRanking); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, _ := s.cur[categoryID].(Ranking)
	from := -1
	for i, id := range cur.CardIDs {
		if id == cardID {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, fmt.Errorf("%w: card %q not in category %q", ErrSelectionRejected, cardID, categoryID)
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= len(cur.CardIDs) {
		toIndex = len(cur.CardIDs) - 1
	}

	ids := make([]string, 0, len(cur.CardIDs))
	ids = append(ids, cur.CardIDs[:from]...)
	ids = append(ids, cur.CardIDs[from+1:]...)
	ids = append(ids[:toIndex], append([]string{cardID}, ids[toIndex:]...)...)
	next := Ranking{CardIDs: ids}
	s.cur[categoryID] = next
	return next, nil
}

// SetScalar replaces a scalar answer. Values outside the category's
// bounds are rejected.
func (s *Store) SetScalar(categoryID string, value int) (Selection, error) {
	cat, err := s.category(categoryID, catalog.KindScalar)
	if err != nil {
		return nil, err
	}
	if value < cat.Min || value > cat.Max {
		return nil, fmt.Errorf("%w: value %d outside [%d,%d]", ErrSelectionRejected, value, cat.Min, cat.Max)
	}
	next := Scalar{Value: value, Set: true}
	s.put(categoryID, next)
	return next, nil
}

// SetFreeText replaces a free-text answer. Leading and trailing space
// is dropped before storage.
func (s *Store) SetFreeText(categoryID, text string) (Selection, error) {
	if _, err := s.category(categoryID, catalog.KindFreeText); err != nil {
		return nil, err
	}
	next := FreeText{Text: trimmed(text)}
	s.put(categoryID, next)
	return next, nil
}

// Reset drops every answer and reseeds rankings to catalog order.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = make(map[string]Selection, len(s.workshop.Categories))
	for i := range s.workshop.Categories {
		cat := &s.workshop.Categories[i]
		if cat.Kind == catalog.KindRanking {
			s.cur[cat.ID] = Ranking{CardIDs: cat.OptionIDs()}
		}
	}
}

// Complete reports whether every required category has a non-empty
// answer. This gates document generation.
func (s *Store) Complete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.workshop.Categories {
		cat := &s.workshop.Categories[i]
		if !cat.Required {
			continue
		}
		cur, ok := s.cur[cat.ID]
		if !ok || cur.Empty() {
			return false
		}
	}
	return true
}

func (s *Store) category(categoryID string, kind catalog.Kind) (*catalog.Category, error) {
	cat, ok := s.workshop.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	if cat.Kind != kind {
		return nil, fmt.Errorf("%w: category %q is %s, not %s", ErrSelectionRejected, categoryID, cat.Kind, kind)
	}
	return cat, nil
}

func (s *Store) put(categoryID string, sel Selection) {
	s.mu.Lock()
	s.cur[categoryID] = sel
	s.mu.Unlock()
}

func emptyFor(kind catalog.Kind) Selection {
	switch kind {
	case catalog.KindSingleChoice:
		return SingleChoice{}
	case catalog.KindMultiChoice:
		return MultiChoice{}
	case catalog.KindRanking:
		return Ranking{}
	case catalog.KindScalar:
		return Scalar{}
	default:
		return FreeText{}
	}
}

func without(ids []string, drop string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
