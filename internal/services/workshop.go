package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/gateway"
	"github.com/lyralearn/workshop-backend/internal/insight"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/prompt"
	"github.com/lyralearn/workshop-backend/internal/repos"
	"github.com/lyralearn/workshop-backend/internal/selection"
	"github.com/lyralearn/workshop-backend/internal/strategy"
	"github.com/lyralearn/workshop-backend/internal/types"
)

// SessionState tracks where a session sits in the generation lifecycle.
type SessionState string

const (
	StateIdle     SessionState = "idle"
	StateAwaiting SessionState = "awaiting_generation"
	StateReady    SessionState = "ready"
	StateFailed   SessionState = "failed"
)

// Generator abstracts the content gateway so tests can substitute a
// fake without HTTP plumbing. *gateway.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, req gateway.Request) (string, error)
}

// SelectionUpdate is the union of mutation payloads. Exactly one group
// of fields applies, matched against the category's kind.
type SelectionUpdate struct {
	OptionID  *string  `json:"option_id,omitempty"`
	OptionIDs []string `json:"option_ids,omitempty"`
	Value     *int     `json:"value,omitempty"`
	Text      *string  `json:"text,omitempty"`
}

// SelectionResult reports a mutation outcome. Rejected mutations are
// not errors: the previous selection stands and Reason says why.
type SelectionResult struct {
	Selection selection.Selection `json:"selection"`
	Rejected  bool                `json:"rejected"`
	Reason    string              `json:"reason,omitempty"`
}

// SessionView is the session state handed to the HTTP layer.
type SessionView struct {
	ID          uuid.UUID                      `json:"id"`
	WorkshopID  string                         `json:"workshop_id"`
	State       SessionState                   `json:"state"`
	CanGenerate bool                           `json:"can_generate"`
	Selections  map[string]selection.Selection `json:"selections"`
}

// PromptPreview exposes the live prompt for the workshop UI.
type PromptPreview struct {
	Insights []string         `json:"insights"`
	Segments []prompt.Segment `json:"segments"`
	Final    string           `json:"final"`
}

type WorkshopService interface {
	CreateSession(ctx context.Context, workshopID string) (*SessionView, error)
	GetSession(sessionID uuid.UUID) (*SessionView, error)
	ApplySelection(ctx context.Context, sessionID uuid.UUID, categoryID string, upd SelectionUpdate) (*SelectionResult, error)
	MoveCard(ctx context.Context, sessionID uuid.UUID, categoryID, cardID string, toIndex int) (*SelectionResult, error)
	Preview(sessionID uuid.UUID) (*PromptPreview, error)
	Generate(ctx context.Context, sessionID uuid.UUID) (*strategy.Document, error)
	Document(sessionID uuid.UUID) (*strategy.Document, error)
	Reset(sessionID uuid.UUID) error
	Selections(sessionID uuid.UUID) (*catalog.Workshop, map[string]selection.Selection, error)
}

type session struct {
	id       uuid.UUID
	workshop *catalog.Workshop
	store    *selection.Store

	mu    sync.Mutex
	state SessionState
	// seq increments on every generation attempt. A response only
	// lands if its sequence number is still current, so a late result
	// from an earlier call can never overwrite a newer one.
	seq uint64
	doc *strategy.Document
}

type workshopService struct {
	log     *logger.Logger
	catalog *catalog.Catalog
	gen     Generator

	runs repos.WorkshopRunRepo
	docs repos.GeneratedDocumentRepo

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NewWorkshopService wires the session service. The repos are optional:
// pass nil to skip run persistence (tests, ephemeral deployments).
func NewWorkshopService(
	log *logger.Logger,
	cat *catalog.Catalog,
	gen Generator,
	runs repos.WorkshopRunRepo,
	docs repos.GeneratedDocumentRepo,
) WorkshopService {
	return &workshopService{
		log:      log.With("service", "WorkshopService"),
		catalog:  cat,
		gen:      gen,
		runs:     runs,
		docs:     docs,
		sessions: make(map[uuid.UUID]*session),
	}
}

func (s *workshopService) CreateSession(ctx context.Context, workshopID string) (*SessionView, error) {
	w, ok := s.catalog.Workshop(workshopID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWorkshopNotFound, workshopID)
	}

	sess := &session{
		id:       uuid.New(),
		workshop: w,
		store:    selection.NewStore(w),
		state:    StateIdle,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.log.Info("Session created", "session_id", sess.id, "workshop_id", workshopID)
	return s.view(sess), nil
}

func (s *workshopService) GetSession(sessionID uuid.UUID) (*SessionView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *workshopService) ApplySelection(ctx context.Context, sessionID uuid.UUID, categoryID string, upd SelectionUpdate) (*SelectionResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	cat, ok := sess.workshop.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", selection.ErrUnknownCategory, categoryID)
	}

	var (
		sel    selection.Selection
		selErr error
	)
	switch cat.Kind {
	case catalog.KindSingleChoice:
		if upd.OptionID == nil {
			return nil, fmt.Errorf("category %q needs option_id", categoryID)
		}
		sel, selErr = sess.store.SetSingle(categoryID, *upd.OptionID)
	case catalog.KindMultiChoice:
		switch {
		case upd.OptionID != nil:
			sel, selErr = sess.store.Toggle(categoryID, *upd.OptionID)
		case upd.OptionIDs != nil:
			sel, selErr = sess.store.SetMulti(categoryID, upd.OptionIDs)
		default:
			return nil, fmt.Errorf("category %q needs option_id or option_ids", categoryID)
		}
	case catalog.KindScalar:
		if upd.Value == nil {
			return nil, fmt.Errorf("category %q needs value", categoryID)
		}
		sel, selErr = sess.store.SetScalar(categoryID, *upd.Value)
	case catalog.KindFreeText:
		if upd.Text == nil {
			return nil, fmt.Errorf("category %q needs text", categoryID)
		}
		sel, selErr = sess.store.SetFreeText(categoryID, *upd.Text)
	case catalog.KindRanking:
		return nil, fmt.Errorf("category %q is a ranking, use the move endpoint", categoryID)
	}

	return s.result(sess, categoryID, sel, selErr)
}

func (s *workshopService) MoveCard(ctx context.Context, sessionID uuid.UUID, categoryID, cardID string, toIndex int) (*SelectionResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sel, selErr := sess.store.Move(categoryID, cardID, toIndex)
	return s.result(sess, categoryID, sel, selErr)
}

func (s *workshopService) Preview(sessionID uuid.UUID) (*PromptPreview, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	snap := sess.store.Snapshot()
	insights := insight.Extract(sess.workshop, snap)
	segments := prompt.Assemble(sess.workshop, insights)
	return &PromptPreview{
		Insights: insight.Strings(insights),
		Segments: segments,
		Final:    prompt.Final(segments),
	}, nil
}

func (s *workshopService) Generate(ctx context.Context, sessionID uuid.UUID) (*strategy.Document, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if !sess.store.Complete() {
		sess.mu.Unlock()
		return nil, ErrEmptyInput
	}
	sess.seq++
	mySeq := sess.seq
	// The prompt is assembled from a snapshot taken here. Selections
	// changed after this point do not affect this generation.
	snap := sess.store.Snapshot()
	sess.state = StateAwaiting
	sess.mu.Unlock()

	insights := insight.Extract(sess.workshop, snap)
	segments := prompt.Assemble(sess.workshop, insights)
	finalPrompt := prompt.Final(segments)

	text, genErr := s.gen.Generate(ctx, gateway.Request{
		CharacterType: sess.workshop.Character,
		ContentType:   sess.workshop.ContentType,
		Topic:         sess.workshop.Topic,
		Context:       finalPrompt,
	})

	sess.mu.Lock()
	if mySeq != sess.seq {
		sess.mu.Unlock()
		s.log.Warn("Discarding stale generation result", "session_id", sess.id, "seq", mySeq)
		return nil, ErrSuperseded
	}
	if genErr != nil {
		sess.state = StateFailed
		sess.mu.Unlock()
		s.log.Error("Generation failed", "session_id", sess.id, "error", genErr)
		return nil, fmt.Errorf("generate content: %w", genErr)
	}
	doc := strategy.Synthesize(text, sess.workshop, snap)
	sess.doc = doc
	sess.state = StateReady
	sess.mu.Unlock()

	s.persist(ctx, sess, finalPrompt, snap, doc)
	return doc, nil
}

func (s *workshopService) Document(sessionID uuid.UUID) (*strategy.Document, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.doc == nil {
		return nil, ErrNoDocument
	}
	return sess.doc, nil
}

func (s *workshopService) Reset(sessionID uuid.UUID) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	sess.store.Reset()
	// Bumping seq guarantees any in-flight generation lands stale.
	sess.seq++
	sess.doc = nil
	sess.state = StateIdle
	sess.mu.Unlock()
	s.log.Info("Session reset", "session_id", sess.id)
	return nil
}

func (s *workshopService) Selections(sessionID uuid.UUID) (*catalog.Workshop, map[string]selection.Selection, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return sess.workshop, sess.store.Snapshot(), nil
}

func (s *workshopService) session(id uuid.UUID) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *workshopService) view(sess *session) *SessionView {
	sess.mu.Lock()
	state := sess.state
	sess.mu.Unlock()
	return &SessionView{
		ID:          sess.id,
		WorkshopID:  sess.workshop.ID,
		State:       state,
		CanGenerate: sess.store.Complete(),
		Selections:  sess.store.Snapshot(),
	}
}

func (s *workshopService) result(sess *session, categoryID string, sel selection.Selection, selErr error) (*SelectionResult, error) {
	if selErr != nil {
		if errors.Is(selErr, selection.ErrSelectionRejected) {
			cur, _ := sess.store.Get(categoryID)
			return &SelectionResult{Selection: cur, Rejected: true, Reason: selErr.Error()}, nil
		}
		return nil, selErr
	}
	return &SelectionResult{Selection: sel}, nil
}

// persist stores the run and document when repos are configured. A
// persistence failure is logged, never surfaced: the user already has
// their document.
func (s *workshopService) persist(ctx context.Context, sess *session, finalPrompt string, snap map[string]selection.Selection, doc *strategy.Document) {
	if s.runs == nil || s.docs == nil {
		return
	}

	selJSON, err := json.Marshal(snap)
	if err != nil {
		s.log.Error("Failed to encode selections", "session_id", sess.id, "error", err)
		return
	}
	run, err := s.runs.Create(ctx, nil, &types.WorkshopRun{
		SessionID:  sess.id,
		WorkshopID: sess.workshop.ID,
		Character:  sess.workshop.Character,
		Prompt:     finalPrompt,
		Selections: datatypes.JSON(selJSON),
		Status:     string(StateReady),
	})
	if err != nil {
		s.log.Error("Failed to persist run", "session_id", sess.id, "error", err)
		return
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("Failed to encode document", "run_id", run.ID, "error", err)
		return
	}
	if _, err := s.docs.Create(ctx, nil, &types.GeneratedDocument{
		RunID:            run.ID,
		ExecutiveSummary: doc.ExecutiveSummary,
		Payload:          datatypes.JSON(docJSON),
	}); err != nil {
		s.log.Error("Failed to persist document", "run_id", run.ID, "error", err)
	}
}
