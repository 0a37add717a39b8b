package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TransferAdminRequest is the payload for POST /admin/transfer.
type TransferAdminRequest struct {
	To string `json:"to" binding:"required"`
}

// MinterRequest is the payload for POST /minters.
type MinterRequest struct {
	Principal string `json:"principal" binding:"required"`
}

// GetAdmin handles GET /admin.
func (h *Handlers) GetAdmin(c *gin.Context) {
	admin, err := h.reg.Admin(c.Request.Context())
	if err != nil {
		failDomain(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"admin": admin})
}

// TransferAdmin handles POST /admin/transfer. Only the current
// administrator may hand the role over; the outgoing admin loses all
// privileges immediately.
func (h *Handlers) TransferAdmin(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	var req TransferAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid transfer payload")
		return
	}

	h.mu.Lock()
	err := h.reg.TransferAdmin(c.Request.Context(), p, req.To)
	h.mu.Unlock()

	finishMutation(c, "transfer_admin", err, http.StatusOK, gin.H{"admin": req.To})
}

// AddMinter handles POST /minters. Granting an existing minter is a no-op.
func (h *Handlers) AddMinter(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	var req MinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid minter payload")
		return
	}

	h.mu.Lock()
	err := h.reg.AddMinter(c.Request.Context(), p, req.Principal)
	h.mu.Unlock()

	finishMutation(c, "add_minter", err, http.StatusCreated,
		gin.H{"principal": req.Principal})
}

// RemoveMinter handles DELETE /minters/:principal. Revoking a non-minter is
// a no-op.
func (h *Handlers) RemoveMinter(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	target := c.Param("principal")

	h.mu.Lock()
	err := h.reg.RemoveMinter(c.Request.Context(), p, target)
	h.mu.Unlock()

	finishMutation(c, "remove_minter", err, http.StatusNoContent, nil)
}

// CheckMinter handles GET /minters/:principal. Note that the administrator
// can mint without holding the minter role, so a false here does not imply
// the principal cannot mint.
func (h *Handlers) CheckMinter(c *gin.Context) {
	target := c.Param("principal")

	isMinter, err := h.reg.IsMinter(c.Request.Context(), target)
	if err != nil {
		failDomain(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"principal": target, "minter": isMinter})
}
