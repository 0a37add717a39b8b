package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/offerhub/go-reputation-registry/internal/utils"
)

// LeaderboardEntry is one row of the leaderboard view, ordered by count
// descending with ties broken by principal.
type LeaderboardEntry struct {
	Principal string `json:"principal"`
	Count     uint64 `json:"count"`
	Rank      uint64 `json:"rank"`
}

// UserRecords handles GET /users/:principal/records. Principals that never
// held a record get an empty list, not a 404.
func (h *Handlers) UserRecords(c *gin.Context) {
	owner := c.Param("principal")

	ids, err := h.reg.UserRecords(c.Request.Context(), owner)
	if err != nil {
		failDomain(c, err)
		return
	}
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	ok(c, http.StatusOK, gin.H{"principal": owner, "records": out})
}

// UserRank handles GET /users/:principal/rank. Rank is computed against the
// leaderboard snapshot, which refreshes on transfers and score updates.
func (h *Handlers) UserRank(c *gin.Context) {
	owner := c.Param("principal")

	rank, err := h.reg.Rank(c.Request.Context(), owner)
	if err != nil {
		failDomain(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"principal": owner, "rank": rank})
}

// Leaderboard handles GET /leaderboard. Supports limit/offset query
// parameters; limit defaults to 50 and is capped at 500.
func (h *Handlers) Leaderboard(c *gin.Context) {
	board, err := h.reg.Leaderboard(c.Request.Context())
	if err != nil {
		failDomain(c, err)
		return
	}

	entries := make([]LeaderboardEntry, 0, len(board))
	for p, n := range board {
		entries = append(entries, LeaderboardEntry{Principal: p, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Principal < entries[j].Principal
	})
	for i := range entries {
		rank := uint64(1)
		for j := range entries {
			if entries[j].Count > entries[i].Count {
				rank++
			}
		}
		entries[i].Rank = rank
	}

	limit := utils.AtoiDefault(c.Query("limit"), 50)
	offset := utils.AtoiDefault(c.Query("offset"), 0)
	page := utils.Paginate(entries, offset, limit, 500)

	ok(c, http.StatusOK, gin.H{
		"total":   len(entries),
		"offset":  offset,
		"entries": page,
	})
}

// Stats handles GET /stats, returning mint totals per category. Totals are
// monotonic; burning a record does not decrement its bucket.
func (h *Handlers) Stats(c *gin.Context) {
	stats, err := h.reg.Stats(c.Request.Context())
	if err != nil {
		failDomain(c, err)
		return
	}
	out := make(map[string]uint64, len(stats))
	for cat, n := range stats {
		out[string(cat)] = n
	}
	ok(c, http.StatusOK, gin.H{"categories": out})
}
