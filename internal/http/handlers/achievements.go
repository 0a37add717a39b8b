package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MintAchievementRequest is the payload for POST /achievements. Type selects
// a curated project achievement; unknown types fall back to a generic entry.
type MintAchievementRequest struct {
	To   string `json:"to" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// MintRatingAchievementRequest is the payload for POST /achievements/rating.
// Extra carries free-form context from the rating pipeline; it is accepted
// and ignored so callers need no special casing.
type MintRatingAchievementRequest struct {
	To    string `json:"to" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Extra string `json:"extra"`
}

// MintAchievement handles POST /achievements.
func (h *Handlers) MintAchievement(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	var req MintAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid achievement payload")
		return
	}

	h.mu.Lock()
	err := h.reg.MintAchievement(c.Request.Context(), p, req.To, req.Type)
	h.mu.Unlock()

	finishMutation(c, "mint_achievement", err, http.StatusCreated,
		gin.H{"owner": req.To, "type": req.Type})
}

// MintRatingAchievement handles POST /achievements/rating.
func (h *Handlers) MintRatingAchievement(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	var req MintRatingAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid achievement payload")
		return
	}

	h.mu.Lock()
	err := h.reg.MintRatingAchievement(c.Request.Context(), p, req.To, req.Type, req.Extra)
	h.mu.Unlock()

	finishMutation(c, "mint_rating_achievement", err, http.StatusCreated,
		gin.H{"owner": req.To, "type": req.Type})
}
