package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"github.com/wellspentstyle/SaleSite-sub000/scrape"
)

// Handler holds dependencies for the admin HTTP handlers.
type Handler struct {
	batch *scrape.Batch
}

// NewHandler creates a new Handler around a batch coordinator.
func NewHandler(batch *scrape.Batch) *Handler {
	return &Handler{batch: batch}
}

// scrapeRequest is the request body for both scrape endpoints. Either a
// single url or an ordered urls list may be supplied.
type scrapeRequest struct {
	URL  string   `json:"url"`
	URLs []string `json:"urls"`
	Test bool     `json:"test"`
}

func (r *scrapeRequest) urls() []string {
	if len(r.URLs) > 0 {
		return r.URLs
	}
	if r.URL != "" {
		return []string{r.URL}
	}
	return nil
}

// scrapeResponse is the collected-form response.
type scrapeResponse struct {
	Success   bool                 `json:"success"`
	BatchID   string               `json:"batchId"`
	Successes []salesite.BatchItem `json:"successes"`
	Failures  []salesite.BatchItem `json:"failures"`
	Total     int                  `json:"total"`
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "salesite-scraper"})
}

// ScrapeProduct runs a batch and responds with the accumulated outcomes.
// Skipped items are reported among the failures with their skip reason.
func (h *Handler) ScrapeProduct(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	urls := req.urls()
	if len(urls) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url or urls required"})
		return
	}

	result, err := h.batch.Run(c.Request.Context(), urls, salesite.Options{Diagnostics: req.Test}, nil)
	if err != nil {
		// Client went away or the request context expired mid-batch.
		c.JSON(http.StatusInternalServerError, gin.H{"error": salesite.ErrorMessage(err)})
		return
	}

	resp := scrapeResponse{
		Success:   true,
		BatchID:   result.BatchID,
		Successes: make([]salesite.BatchItem, 0, result.Successes),
		Failures:  make([]salesite.BatchItem, 0, result.Failures+result.Skipped),
		Total:     result.Total,
	}
	for _, item := range result.Items {
		if item.Status == salesite.StatusSuccess {
			resp.Successes = append(resp.Successes, item)
		} else {
			resp.Failures = append(resp.Failures, item)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// sseEvent is the wire form of a batch event.
type sseEvent struct {
	Index    int                   `json:"index"`
	URL      string                `json:"url,omitempty"`
	Progress sseProgress           `json:"progress"`
	Item     *salesite.BatchItem   `json:"item,omitempty"`
	Result   *salesite.BatchResult `json:"result,omitempty"`
}

type sseProgress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// StreamScrapeProduct runs a batch and streams one server-sent event per
// state transition: start, scraping, skip, success, error, complete.
// A client disconnect cancels the request context and stops the batch.
func (h *Handler) StreamScrapeProduct(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	urls := req.urls()
	if len(urls) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url or urls required"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	emit := func(event salesite.Event) {
		c.SSEvent(string(event.Type), sseEvent{
			Index:    event.Index,
			URL:      event.URL,
			Progress: sseProgress{Current: event.Current, Total: event.Total},
			Item:     event.Item,
			Result:   event.Result,
		})
		c.Writer.Flush()
	}

	// The emit callback has already streamed everything, including the
	// complete event; a context error just means the client is gone.
	_, _ = h.batch.Run(c.Request.Context(), urls, salesite.Options{Diagnostics: req.Test}, emit)
}
