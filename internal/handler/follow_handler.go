package handler

import (
	"net/http"

	"Social_Model/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowerHandler struct {
	svc *service.FollowerService
}

func NewFollowerHandler(svc *service.FollowerService) *FollowerHandler {
	return &FollowerHandler{svc: svc}
}

type followReq struct {
	UserFromID uint64 `json:"user_from_id" binding:"required"`
	UserToID   uint64 `json:"user_to_id" binding:"required"`
}

// Follow 关注接口
func (h *FollowerHandler) Follow(c *gin.Context) {
	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	out, err := h.svc.Follow(c.Request.Context(), req.UserFromID, req.UserToID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *FollowerHandler) Get(c *gin.Context) {
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

// Delete 删除一条关注边
func (h *FollowerHandler) Delete(c *gin.Context) {
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
