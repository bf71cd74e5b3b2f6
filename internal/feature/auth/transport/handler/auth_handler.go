// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/auth/domain/entity"
	"social_backend/internal/feature/auth/transport/http/dto"
	"social_backend/internal/feature/auth/usecase"
	"social_backend/internal/platform/http/respond"
	"social_backend/internal/platform/logger"
	"social_backend/internal/shared/apperr"
)

// MsgInvalidBody はJSONとして解釈できないリクエストボディへのメッセージです。
const MsgInvalidBody = "Invalid request body"

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は入力を検証し、新規ユーザーを登録します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login はユーザーを認証し、成功時にアクセストークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - 不正なJSON・検証エラー・メール重複時は400を返却
// - 成功時は {id, email} と201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, apperr.Validation("", MsgInvalidBody))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		log.Warn("register failed", "error", err, "email", logger.MaskEmail(req.Email), "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	log.Info("user registered", "user_id", user.ID, "email", logger.MaskEmail(user.Email), "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{ID: user.ID, Email: user.Email})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 必須項目の欠落時は400を返却
// - 認証失敗時は401を返却（存在しないユーザーとパスワード不一致は区別しない）
// - 認証成功時はアクセストークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, apperr.Validation("", MsgInvalidBody))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("login failed", "error", err, "email", logger.MaskEmail(req.Email), "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	log.Info("user login successful", "email", logger.MaskEmail(req.Email), "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{AccessToken: token})
}
