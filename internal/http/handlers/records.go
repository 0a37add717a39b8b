package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/offerhub/go-reputation-registry/internal/domain"
)

// MintRecordRequest is the payload for POST /records.
type MintRecordRequest struct {
	ID          uint64 `json:"id" binding:"required"`
	To          string `json:"to" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	URI         string `json:"uri"`
}

// BatchMintRequest is the payload for POST /records/batch. The four slices
// are positional: entry i mints Names[i]/Descriptions[i]/URIs[i] to To[i].
type BatchMintRequest struct {
	To           []string `json:"to" binding:"required"`
	Names        []string `json:"names" binding:"required"`
	Descriptions []string `json:"descriptions" binding:"required"`
	URIs         []string `json:"uris" binding:"required"`
}

// TransferRequest is the payload for POST /records/:id/transfer. The sender
// is always the caller principal.
type TransferRequest struct {
	To string `json:"to" binding:"required"`
}

// ReissueMetadataRequest is the payload for PUT /records/:id/metadata.
type ReissueMetadataRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	URI         string `json:"uri"`
}

// RecordResponse is the representation of a record returned by read
// endpoints.
type RecordResponse struct {
	ID          uint64 `json:"id"`
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URI         string `json:"uri"`
	Category    string `json:"category"`
}

func toRecordResponse(rec domain.Record) RecordResponse {
	return RecordResponse{
		ID:          uint64(rec.ID),
		Owner:       rec.Owner,
		Name:        rec.Metadata.Name,
		Description: rec.Metadata.Description,
		URI:         rec.Metadata.URI,
		Category:    string(rec.Metadata.Category),
	}
}

// MintRecord handles POST /records. The caller must hold the minter role or
// be the administrator.
func (h *Handlers) MintRecord(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	var req MintRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid mint payload")
		return
	}

	h.mu.Lock()
	err := h.reg.Mint(c.Request.Context(), p, req.To, domain.RecordID(req.ID),
		req.Name, req.Description, req.URI)
	h.mu.Unlock()

	finishMutation(c, "mint", err, http.StatusCreated, gin.H{"id": req.ID})
}

// BatchMintRecords handles POST /records/batch. Entries are applied in
// order; a failure partway leaves earlier entries committed.
func (h *Handlers) BatchMintRecords(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	var req BatchMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid batch payload")
		return
	}

	h.mu.Lock()
	err := h.reg.BatchMint(c.Request.Context(), p, req.To, req.Names,
		req.Descriptions, req.URIs)
	h.mu.Unlock()

	finishMutation(c, "batch_mint", err, http.StatusCreated,
		gin.H{"minted": len(req.To)})
}

// TransferRecord handles POST /records/:id/transfer. Only the current owner
// may move a record, and only transferable categories can move.
func (h *Handlers) TransferRecord(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	id, okID := recordID(c)
	if !okID {
		return
	}
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid transfer payload")
		return
	}

	h.mu.Lock()
	err := h.reg.Transfer(c.Request.Context(), p, req.To, id)
	h.mu.Unlock()

	finishMutation(c, "transfer", err, http.StatusOK,
		gin.H{"id": uint64(id), "owner": req.To})
}

// BurnRecord handles DELETE /records/:id. Restricted to minters and the
// administrator.
func (h *Handlers) BurnRecord(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	id, okID := recordID(c)
	if !okID {
		return
	}

	h.mu.Lock()
	err := h.reg.Burn(c.Request.Context(), p, id)
	h.mu.Unlock()

	finishMutation(c, "burn", err, http.StatusNoContent, nil)
}

// ReissueRecordMetadata handles PUT /records/:id/metadata. The category is
// preserved; only the descriptive fields change.
func (h *Handlers) ReissueRecordMetadata(c *gin.Context) {
	p, okc := caller(c)
	if !okc {
		return
	}
	id, okID := recordID(c)
	if !okID {
		return
	}
	var req ReissueMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid metadata payload")
		return
	}

	h.mu.Lock()
	err := h.reg.ReissueMetadata(c.Request.Context(), p, id,
		req.Name, req.Description, req.URI)
	h.mu.Unlock()

	finishMutation(c, "reissue_metadata", err, http.StatusOK, gin.H{"id": uint64(id)})
}

// GetRecord handles GET /records/:id.
func (h *Handlers) GetRecord(c *gin.Context) {
	id, okID := recordID(c)
	if !okID {
		return
	}

	rec, err := h.reg.Record(c.Request.Context(), id)
	if err != nil {
		failDomain(c, err)
		return
	}
	ok(c, http.StatusOK, toRecordResponse(rec))
}
