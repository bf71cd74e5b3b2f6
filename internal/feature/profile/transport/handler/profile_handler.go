// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/auth/domain/entity"
	authdto "social_backend/internal/feature/auth/transport/http/dto"
	"social_backend/internal/feature/profile/transport/http/dto"
	"social_backend/internal/feature/profile/usecase"
	"social_backend/internal/platform/http/respond"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/platform/logger"
	"social_backend/internal/shared/apperr"
)

// MsgInvalidBody はJSONとして解釈できないリクエストボディへのメッセージです。
const MsgInvalidBody = "Invalid request body"

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	View(ctx context.Context, userID string) (*entity.User, error)
	Create(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
	Edit(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
}

// ProfileHandler はプロフィール操作のHTTPリクエストを処理します。
// すべてのルートはAuthRequiredの後ろに置かれます。
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// View は呼び出し元のユーザー情報を {user} として返します。
func (h *ProfileHandler) View(c *gin.Context) {
	claims, ok := caller(c)
	if !ok {
		return
	}

	user, err := h.profile.View(c.Request.Context(), claims.ID)
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("profile view failed", "error", err, "user_id", claims.ID)
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ViewRes{User: authdto.NewUserRes(user)})
}

// Create は初回プロフィールを設定し、{updatedUser} を返します。
func (h *ProfileHandler) Create(c *gin.Context) {
	h.write(c, "profile create", h.profile.Create)
}

// Edit はプロフィールを部分更新し、{updatedUser} を返します。
func (h *ProfileHandler) Edit(c *gin.Context) {
	h.write(c, "profile edit", h.profile.Edit)
}

type profileWriter func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)

func (h *ProfileHandler) write(c *gin.Context, op string, fn profileWriter) {
	log := logger.FromContext(c.Request.Context())

	claims, ok := caller(c)
	if !ok {
		return
	}

	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn(op+" bind failed", "error", err, "user_id", claims.ID)
		respond.Error(c, apperr.Validation("", MsgInvalidBody))
		return
	}

	user, err := fn(c.Request.Context(), claims.ID, usecase.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DOB,
	})
	if err != nil {
		log.Warn(op+" failed", "error", err, "user_id", claims.ID)
		respond.Error(c, err)
		return
	}

	log.Info("profile updated", "user_id", claims.ID)
	c.JSON(http.StatusOK, dto.UpdatedRes{UpdatedUser: authdto.NewUserRes(user)})
}

// caller はAuthRequiredが設定したクレームを取り出します。無い場合は401を書き込みます。
func caller(c *gin.Context) (jwtmw.Claims, bool) {
	claims, ok := jwtmw.CurrentClaims(c)
	if !ok || claims.ID == "" {
		respond.Error(c, apperr.Auth("unauthorized"))
		return jwtmw.Claims{}, false
	}
	return claims, true
}
