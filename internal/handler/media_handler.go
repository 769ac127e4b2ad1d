package handler

import (
	"net/http"

	"Social_Model/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	svc *service.MediaService
}

// MediaReq type 是自由文本，常见取值 image / video
type MediaReq struct {
	Type   string `json:"type" binding:"required"`
	URL    string `json:"url" binding:"required"`
	PostID uint64 `json:"post_id" binding:"required"`
}

func (r MediaReq) fields() service.MediaFields {
	return service.MediaFields{Type: r.Type, URL: r.URL, PostID: r.PostID}
}

func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

func (h *MediaHandler) Create(c *gin.Context) {
	var req MediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	out, err := h.svc.Create(c.Request.Context(), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req MediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
