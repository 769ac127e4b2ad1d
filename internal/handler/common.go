package handler

import (
	"net/http"
	"strconv"

	"Social_Model/internal/middleware"
	"Social_Model/internal/pkg"
	"Social_Model/internal/repository/rdb"

	"github.com/gin-gonic/gin"
)

// idParam 解析路径上的 :id，失败时已写回 400
func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError 存储层错误原样向上传，只在这里映射成状态码
func respondError(c *gin.Context, err error) {
	switch {
	case rdb.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case rdb.IsConstraintViolation(err):
		// 约束名和 SQL 只进日志
		pkg.Warn.Printf("request %s %s %s rejected: %v",
			c.GetString(middleware.ContextRequestIDKey), c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusConflict, gin.H{"msg": "constraint violation"})
	default:
		pkg.Error.Printf("request %s %s %s failed: %v",
			c.GetString(middleware.ContextRequestIDKey), c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
