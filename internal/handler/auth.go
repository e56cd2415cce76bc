package handler

import (
	"net/http"
	"time"

	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler 用家庭口令换取访问 token
type AuthHandler struct {
	PassphraseHash string
	JWTSecret      string
	TokenTTL       time.Duration
}

// NewAuthHandler 构造函数
func NewAuthHandler(passphraseHash, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		PassphraseHash: passphraseHash,
		JWTSecret:      jwtSecret,
		TokenTTL:       time.Duration(ttlHours) * time.Hour,
	}
}

type tokenReq struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// IssueToken 校验口令后签发 JWT，同时写入 cookie
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if h.PassphraseHash == "" {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "未启用访问口令")
		return
	}

	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	if !util.CheckPassword(req.Passphrase, h.PassphraseHash) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "口令错误")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "生成 token 失败")
		return
	}

	c.SetCookie("hl_token", token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	util.Success(c, util.Response{
		"token":      token,
		"expires_in": int(h.TokenTTL.Seconds()),
	})
}
