package router

import (
	"Social_Model/internal/handler"
	"Social_Model/internal/middleware"
	"Social_Model/internal/repository/rdb"
	"Social_Model/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(store *rdb.Store) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	user := handler.NewUserHandler(service.NewUserService(store))
	follower := handler.NewFollowerHandler(service.NewFollowerService(store))
	post := handler.NewPostHandler(service.NewPostService(store))
	comment := handler.NewCommentHandler(service.NewCommentService(store))
	media := handler.NewMediaHandler(service.NewMediaService(store))

	api := r.Group("/api")

	// 用户相关接口
	userGroup := api.Group("/users")
	{
		userGroup.POST("", user.Create)
		userGroup.GET("/:id", user.Get)
		userGroup.PUT("/:id", user.Update)
		userGroup.DELETE("/:id", user.Delete)
	}

	// 关注关系接口
	followerGroup := api.Group("/followers")
	{
		followerGroup.POST("", follower.Follow)
		followerGroup.GET("/:id", follower.Get)
		followerGroup.DELETE("/:id", follower.Delete)
	}

	// 帖子相关接口
	postGroup := api.Group("/posts")
	{
		postGroup.POST("", post.CreatePost)
		postGroup.GET("/:id", post.GetPost)
		postGroup.DELETE("/:id", post.DeletePost)
	}

	commentGroup := api.Group("/comments")
	{
		commentGroup.POST("", comment.Create)
		commentGroup.GET("/:id", comment.Get)
		commentGroup.PUT("/:id", comment.Update)
		commentGroup.DELETE("/:id", comment.Delete)
	}

	mediaGroup := api.Group("/media")
	{
		mediaGroup.POST("", media.Create)
		mediaGroup.GET("/:id", media.Get)
		mediaGroup.PUT("/:id", media.Update)
		mediaGroup.DELETE("/:id", media.Delete)
	}

	return r
}
