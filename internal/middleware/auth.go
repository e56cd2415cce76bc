package middleware

import (
	"net/http"
	"strings"

	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验访问令牌。enabled 为 false 时直接放行（未设置口令）。
func AuthMiddleware(jwtSecret string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			}
		}

		// 2) ?token=xxx，用于下载备份等无法自定义 Header 的场景
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		// 3) Cookie hl_token
		if tokenStr == "" {
			if cookie, err := c.Cookie("hl_token"); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			c.Abort()
			return
		}

		if _, err := util.ParseToken(jwtSecret, tokenStr); err != nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "登录已失效，请重新登录")
			c.Abort()
			return
		}

		c.Next()
	}
}
