// Package handler はcommentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/comment/domain/entity"
	"social_backend/internal/feature/comment/transport/http/dto"
	"social_backend/internal/platform/http/respond"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/platform/logger"
	"social_backend/internal/shared/apperr"
)

// MsgInvalidBody はJSONとして解釈できないリクエストボディへのメッセージです。
const MsgInvalidBody = "Invalid request body"

// CommentUsecase はコメント操作のユースケースを定義します。
type CommentUsecase interface {
	Create(ctx context.Context, userID, postID, content string) (*entity.Comment, error)
	List(ctx context.Context, postID string) ([]entity.Comment, error)
}

// CommentHandler はコメント操作のHTTPリクエストを処理します。
type CommentHandler struct {
	comments CommentUsecase
}

// NewCommentHandler はCommentHandlerの新しいインスタンスを生成します。
func NewCommentHandler(comments CommentUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create は :postId の投稿にコメントを追加し、作成したコメントを200で返します。
func (h *CommentHandler) Create(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	claims, ok := jwtmw.CurrentClaims(c)
	if !ok {
		respond.Error(c, apperr.Auth("unauthorized"))
		return
	}
	postID := c.Param("postId")

	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("comment create bind failed", "error", err, "user_id", claims.ID)
		respond.Error(c, apperr.Validation("", MsgInvalidBody))
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), claims.ID, postID, req.Content)
	if err != nil {
		log.Warn("comment create failed", "error", err, "user_id", claims.ID, "post_id", postID)
		respond.Error(c, err)
		return
	}

	log.Info("comment created", "comment_id", comment.ID, "post_id", postID, "user_id", claims.ID)
	c.JSON(http.StatusOK, comment)
}

// List は :postId の投稿に付いたコメント一覧を返します。
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
