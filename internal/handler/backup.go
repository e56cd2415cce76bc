package handler

import (
	"errors"
	"fmt"
	"net/http"

	"household-ledger/internal/backup"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// BackupHandler 负责备份相关接口
type BackupHandler struct {
	Service *backup.Service
}

// NewBackupHandler 构造函数
func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{Service: svc}
}

type createBackupReq struct {
	Note string `json:"note" binding:"max=200"`
}

func (h *BackupHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, backup.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "备份不存在")
	case errors.Is(err, store.ErrInvalidDocument):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "备份内容无效")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, msg)
	}
}

// CreateBackup 生成当前全部数据的加密备份
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	var req createBackupReq
	// body 可以为空
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
			return
		}
	}

	b, err := h.Service.Create(c.Request.Context(), req.Note)
	if err != nil {
		h.writeError(c, err, "创建备份失败")
		return
	}

	util.Created(c, util.Response{"backup": b})
}

// ListBackups 列出已有的备份
func (h *BackupHandler) ListBackups(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "查询备份失败")
		return
	}
	util.Success(c, util.Response{"items": list})
}

// DownloadBackup 下载加密后的备份文件
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "查询备份失败")
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", b.FileName))
	c.File(b.FilePath)
}

// RestoreBackup 用备份内容替换当前数据
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	if err := h.Service.Restore(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "恢复失败")
		return
	}
	util.Success(c, util.Response{"message": "恢复成功"})
}

// DeleteBackup 删除备份记录及对应文件
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "删除备份失败")
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}
