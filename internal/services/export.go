package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/strategy"
)

// Export is a downloadable plain-text artifact.
type Export struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ExportService interface {
	Resource(sessionID uuid.UUID, slug string) (*Export, error)
	FullDocument(sessionID uuid.UUID) (*Export, error)
}

type exportService struct {
	log      *logger.Logger
	sessions WorkshopService
	now      func() time.Time
}

func NewExportService(log *logger.Logger, sessions WorkshopService) ExportService {
	return &exportService{
		log:      log.With("service", "ExportService"),
		sessions: sessions,
		now:      time.Now,
	}
}

// Resource exports one document resource as text, named
// "<slug>-<date>.txt".
func (s *exportService) Resource(sessionID uuid.UUID, slug string) (*Export, error) {
	doc, err := s.sessions.Document(sessionID)
	if err != nil {
		return nil, err
	}
	for _, r := range doc.Resources {
		if r.Slug == slug {
			return &Export{
				Filename: fmt.Sprintf("%s-%s.txt", r.Slug, s.now().UTC().Format("2006-01-02")),
				Content:  r.Content,
			}, nil
		}
	}
	return nil, fmt.Errorf("resource %q not found", slug)
}

// FullDocument exports the whole strategy as a single text file.
func (s *exportService) FullDocument(sessionID uuid.UUID) (*Export, error) {
	doc, err := s.sessions.Document(sessionID)
	if err != nil {
		return nil, err
	}
	return &Export{
		Filename: fmt.Sprintf("strategy-%s.txt", s.now().UTC().Format("2006-01-02")),
		Content:  renderDocument(doc),
	}, nil
}

func renderDocument(doc *strategy.Document) string {
	out := "EXECUTIVE SUMMARY\n" + doc.ExecutiveSummary + "\n\n"
	out += "ACTION ITEMS\n"
	for _, a := range doc.ActionItems {
		out += fmt.Sprintf("- [%s] %s (%s, %s): %s\n", a.Priority, a.Title, a.Timeframe, a.Owner, a.Description)
	}
	out += "\nTIMELINE\n"
	for _, p := range doc.Timeline {
		out += fmt.Sprintf("- %s (%s): %s\n", p.Title, p.Duration, p.Description)
	}
	out += "\nSUCCESS METRICS\n"
	for _, m := range doc.Metrics {
		out += fmt.Sprintf("- %s %s: %s\n", m.Name, m.Target, m.Description)
	}
	if doc.FullText != "" {
		out += "\nFULL STRATEGY\n" + doc.FullText + "\n"
	}
	return out
}
