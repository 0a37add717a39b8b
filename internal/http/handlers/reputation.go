package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpdateScoreRequest is the payload for POST /reputation/:principal. The
// average is scaled by 100, so 450 means 4.50 stars.
type UpdateScoreRequest struct {
	RatingAverage uint32 `json:"rating_average"`
	TotalRatings  uint32 `json:"total_ratings"`
}

// ScoreResponse is the representation of a stored reputation snapshot.
type ScoreResponse struct {
	Principal     string `json:"principal"`
	RatingAverage uint32 `json:"rating_average"`
	TotalRatings  uint32 `json:"total_ratings"`
	UpdatedAt     int64  `json:"updated_at"`
}

// UpdateScore handles POST /reputation/:principal. Crossing a milestone
// threshold mints the corresponding achievement as a side effect.
func (h *Handlers) UpdateScore(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	subject := c.Param("principal")
	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid score payload")
		return
	}

	h.mu.Lock()
	err := h.reg.UpdateScore(c.Request.Context(), p, subject,
		req.RatingAverage, req.TotalRatings)
	h.mu.Unlock()

	finishMutation(c, "update_score", err, http.StatusOK, gin.H{
		"principal":      subject,
		"rating_average": req.RatingAverage,
		"total_ratings":  req.TotalRatings,
	})
}

// GetScore handles GET /reputation/:principal.
func (h *Handlers) GetScore(c *gin.Context) {
	subject := c.Param("principal")

	score, found, err := h.reg.Score(c.Request.Context(), subject)
	if err != nil {
		failDomain(c, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no reputation recorded")
		return
	}
	ok(c, http.StatusOK, ScoreResponse{
		Principal:     subject,
		RatingAverage: score.RatingAverage,
		TotalRatings:  score.TotalRatings,
		UpdatedAt:     score.UpdatedAt,
	})
}
