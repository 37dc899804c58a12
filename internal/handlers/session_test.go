package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/gateway"
	"github.com/lyralearn/workshop-backend/internal/handlers"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/server"
	"github.com/lyralearn/workshop-backend/internal/services"
)

type stubGenerator struct {
	content string
	err     error
}

func (s *stubGenerator) Generate(ctx context.Context, req gateway.Request) (string, error) {
	return s.content, s.err
}

func newTestRouter(t *testing.T, gen services.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New()
	log := logger.NewNop()
	workshop := services.NewWorkshopService(log, cat, gen, nil, nil)
	export := services.NewExportService(log, workshop)

	return server.NewRouter(server.RouterConfig{
		ServiceName:       "workshop-backend-test",
		WorkshopHandler:   handlers.NewWorkshopHandler(cat),
		SessionHandler:    handlers.NewSessionHandler(workshop),
		GenerationHandler: handlers.NewGenerationHandler(workshop, export),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, router *gin.Engine, workshopID string) string {
	t.Helper()
	rec := doJSON(t, router, "POST", "/api/sessions", gin.H{"workshop_id": workshopID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var out struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	return out.Session.ID
}

func TestOverflowSelectionReturnsRejectedNotError(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{content: "ok"})
	id := createSession(t, router, "carmen-talent-acquisition")

	for _, opt := range []string{"faster-hiring", "better-quality"} {
		rec := doJSON(t, router, "PUT", "/api/sessions/"+id+"/selections/goals", gin.H{"option_id": opt})
		if rec.Code != http.StatusOK {
			t.Fatalf("toggle %s: status=%d body=%s", opt, rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, router, "PUT", "/api/sessions/"+id+"/selections/goals", gin.H{"option_id": "improve-diversity"})
	if rec.Code != http.StatusOK {
		t.Fatalf("overflow must be 200: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var out struct {
		Result struct {
			Rejected bool   `json:"rejected"`
			Reason   string `json:"reason"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if !out.Result.Rejected || out.Result.Reason == "" {
		t.Fatalf("result=%+v", out.Result)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{content: "A thoughtful plan.\nWith detail.\nAnd metrics."})
	id := createSession(t, router, "carmen-talent-acquisition")

	// Not yet generatable.
	rec := doJSON(t, router, "POST", "/api/sessions/"+id+"/generate", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("incomplete selections: status=%d", rec.Code)
	}

	for cat, opt := range map[string]string{
		"roles":      "program-manager",
		"challenges": "long-time-to-hire",
		"goals":      "faster-hiring",
	} {
		rec := doJSON(t, router, "PUT", "/api/sessions/"+id+"/selections/"+cat, gin.H{"option_id": opt})
		if rec.Code != http.StatusOK {
			t.Fatalf("select %s: status=%d", cat, rec.Code)
		}
	}

	rec = doJSON(t, router, "POST", "/api/sessions/"+id+"/generate", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var out struct {
		Document struct {
			ExecutiveSummary string `json:"executive_summary"`
		} `json:"document"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Document.ExecutiveSummary != "A thoughtful plan. With detail. And metrics." {
		t.Fatalf("summary=%q", out.Document.ExecutiveSummary)
	}

	// Resource export carries an attachment filename.
	req := httptest.NewRequest("GET", "/api/sessions/"+id+"/resources/structured-interview-guide/export", nil)
	exportRec := httptest.NewRecorder()
	router.ServeHTTP(exportRec, req)
	if exportRec.Code != http.StatusOK {
		t.Fatalf("export: status=%d", exportRec.Code)
	}
	disp := exportRec.Header().Get("Content-Disposition")
	if !strings.Contains(disp, "structured-interview-guide-") || !strings.Contains(disp, ".txt") {
		t.Fatalf("disposition=%q", disp)
	}
}

func TestGenerateUpstreamFailureIs502(t *testing.T) {
	gen := &stubGenerator{err: &gateway.HTTPError{StatusCode: 500, Body: "upstream down"}}
	router := newTestRouter(t, gen)
	id := createSession(t, router, "carmen-talent-acquisition")

	for cat, opt := range map[string]string{
		"roles":      "program-manager",
		"challenges": "long-time-to-hire",
		"goals":      "faster-hiring",
	} {
		rec := doJSON(t, router, "PUT", "/api/sessions/"+id+"/selections/"+cat, gin.H{"option_id": opt})
		if rec.Code != http.StatusOK {
			t.Fatalf("select %s: status=%d", cat, rec.Code)
		}
	}

	rec := doJSON(t, router, "POST", "/api/sessions/"+id+"/generate", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("gateway failure: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "generation_failed") {
		t.Fatalf("body=%s", rec.Body.String())
	}

	gen.err = gateway.ErrEmptyCompletion
	rec = doJSON(t, router, "POST", "/api/sessions/"+id+"/generate", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("empty completion: status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRankingMoveEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{content: "ok"})
	id := createSession(t, router, "carmen-engagement-builder")

	idx := 0
	rec := doJSON(t, router, "PUT", "/api/sessions/"+id+"/rankings/initiatives/move",
		gin.H{"card_id": "pulse-surveys", "to_index": idx})
	if rec.Code != http.StatusOK {
		t.Fatalf("move: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var out struct {
		Result struct {
			Selection struct {
				CardIDs []string `json:"card_ids"`
			} `json:"selection"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Result.Selection.CardIDs) == 0 || out.Result.Selection.CardIDs[0] != "pulse-surveys" {
		t.Fatalf("cards=%v", out.Result.Selection.CardIDs)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	rec := doJSON(t, router, "GET", "/api/sessions/00000000-0000-0000-0000-000000000001", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rec.Code)
	}
}
