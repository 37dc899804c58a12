package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/lyralearn/workshop-backend/internal/repos"
	"github.com/lyralearn/workshop-backend/internal/types"
)

// RunHandler exposes persisted generation history. It is only mounted
// when a database is configured.
type RunHandler struct {
	runRepo repos.WorkshopRunRepo
	docRepo repos.GeneratedDocumentRepo
}

func NewRunHandler(runRepo repos.WorkshopRunRepo, docRepo repos.GeneratedDocumentRepo) *RunHandler {
	return &RunHandler{runRepo: runRepo, docRepo: docRepo}
}

type runWithDocument struct {
	Run      *types.WorkshopRun       `json:"run"`
	Document *types.GeneratedDocument `json:"document,omitempty"`
}

func (rh *RunHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, err := rh.runRepo.ListRecent(c.Request.Context(), nil, limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_runs", err)
		return
	}

	// Documents are fetched concurrently, one lookup per run.
	out := make([]runWithDocument, len(runs))
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(8)
	for i, run := range runs {
		i, run := i, run
		out[i].Run = run
		g.Go(func() error {
			doc, err := rh.docRepo.GetByRunID(ctx, nil, run.ID)
			if err != nil {
				// Missing document is expected for failed runs.
				return nil
			}
			out[i].Document = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		RespondError(c, http.StatusInternalServerError, "list_runs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": out})
}
