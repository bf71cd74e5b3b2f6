// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout は各依存先チェックの上限時間です。
const readyTimeout = 2 * time.Second

// Check は名前付きの依存先疎通確認です（DB、Redisなど）。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Health は /healthz の生存確認です。依存先には触れません。
// HEADはボディなしの200、それ以外は {"status":"ok"} を返します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready は /readyz エンドポイントのハンドラーを返します。
// すべてのチェックが成功すれば200、いずれかが失敗すれば503を返します。
func Ready(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		results := make(map[string]string, len(checks))
		status, overall := http.StatusOK, "ok"
		for _, chk := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
			err := chk.Ping(ctx)
			cancel()
			if err != nil {
				slog.Warn("readiness check failed", "check", chk.Name, "error", err)
				results[chk.Name] = "unavailable"
				status, overall = http.StatusServiceUnavailable, "unavailable"
				continue
			}
			results[chk.Name] = "ok"
		}

		c.JSON(status, gin.H{"status": overall, "checks": results})
	}
}
