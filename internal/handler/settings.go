package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"household-ledger/internal/logger"
	"household-ledger/internal/models"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 10 << 20

// SettingsHandler 导出、导入、清空数据以及主题
type SettingsHandler struct {
	Store *store.Store
	Now   Clock
}

func NewSettingsHandler(st *store.Store, clock Clock) *SettingsHandler {
	return &SettingsHandler{Store: st, Now: clockOrNow(clock)}
}

// Export 下载完整的导出文档
func (h *SettingsHandler) Export(c *gin.Context) {
	raw, err := json.MarshalIndent(h.Store.Export(), "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "序列化失败")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", store.ExportFileName(h.Now())))
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// Import 支持直接提交 JSON，或 multipart 的 file 字段
func (h *SettingsHandler) Import(c *gin.Context) {
	var (
		raw []byte
		err error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, ferr := c.FormFile("file")
		if ferr != nil {
			badParam(c, "缺少文件")
			return
		}
		if fh.Size > maxImportSize {
			badParam(c, "文件过大")
			return
		}
		f, ferr := fh.Open()
		if ferr != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "读取文件失败")
			return
		}
		defer f.Close()
		raw, err = io.ReadAll(f)
	} else {
		raw, err = io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize+1))
		if err == nil && len(raw) > maxImportSize {
			badParam(c, "文件过大")
			return
		}
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "读取文件失败")
		return
	}

	if err := h.Store.Import(c.Request.Context(), raw); err != nil {
		logger.WarnLog(c.Request.Context(), "import failed: %v", err)
		writeStoreError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "导入成功"})
}

type resetReq struct {
	Confirm      bool `json:"confirm"`
	ConfirmAgain bool `json:"confirm_again"`
}

// Reset 需要两次确认，清空全部数据并恢复默认分类与主题
func (h *SettingsHandler) Reset(c *gin.Context) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if !req.Confirm || !req.ConfirmAgain {
		badParam(c, "需要两次确认才能清空数据")
		return
	}
	if err := h.Store.ResetAll(c.Request.Context()); err != nil {
		writeStoreError(c, err)
		return
	}
	logger.InfoLog(c.Request.Context(), "all data reset")
	util.Success(c, util.Response{"message": "数据已清空"})
}

// ---------- 主题 ----------

func (h *SettingsHandler) GetTheme(c *gin.Context) {
	util.Success(c, util.Response{"theme": h.Store.Theme()})
}

type themeReq struct {
	Theme models.Theme `json:"theme" binding:"required"`
}

func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req themeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if req.Theme != models.ThemeLight && req.Theme != models.ThemeDark {
		badParam(c, "主题必须为 light 或 dark")
		return
	}
	if err := h.Store.SetTheme(c.Request.Context(), req.Theme); err != nil {
		writeStoreError(c, err)
		return
	}
	util.Success(c, util.Response{"theme": h.Store.Theme()})
}

func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.Store.ToggleTheme(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	util.Success(c, util.Response{"theme": theme})
}
