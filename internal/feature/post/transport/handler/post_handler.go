// Package handler はpostフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/post/domain/entity"
	"social_backend/internal/feature/post/transport/http/dto"
	"social_backend/internal/platform/http/respond"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/platform/logger"
	"social_backend/internal/shared/apperr"
)

// MsgInvalidBody はJSONとして解釈できないリクエストボディへのメッセージです。
const MsgInvalidBody = "Invalid request body"

// PostUsecase は投稿操作のユースケースを定義します。
type PostUsecase interface {
	Create(ctx context.Context, userID, title, content string) (*entity.Post, error)
	UserPosts(ctx context.Context, userID string) ([]entity.Post, error)
	All(ctx context.Context) ([]entity.Post, error)
}

// PostHandler は投稿操作のHTTPリクエストを処理します。
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler はPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create は投稿を作成し、作成した投稿をそのまま200で返します。
func (h *PostHandler) Create(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	claims, ok := jwtmw.CurrentClaims(c)
	if !ok {
		respond.Error(c, apperr.Auth("unauthorized"))
		return
	}

	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("post create bind failed", "error", err, "user_id", claims.ID)
		respond.Error(c, apperr.Validation("", MsgInvalidBody))
		return
	}

	post, err := h.posts.Create(c.Request.Context(), claims.ID, req.Title, req.Content)
	if err != nil {
		log.Warn("post create failed", "error", err, "user_id", claims.ID)
		respond.Error(c, err)
		return
	}

	log.Info("post created", "post_id", post.ID, "user_id", claims.ID)
	c.JSON(http.StatusOK, post)
}

// UserPosts は呼び出し元の投稿一覧を返します。
func (h *PostHandler) UserPosts(c *gin.Context) {
	claims, ok := jwtmw.CurrentClaims(c)
	if !ok {
		respond.Error(c, apperr.Auth("unauthorized"))
		return
	}

	posts, err := h.posts.UserPosts(c.Request.Context(), claims.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// All はすべての投稿一覧を返します。
func (h *PostHandler) All(c *gin.Context) {
	posts, err := h.posts.All(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
