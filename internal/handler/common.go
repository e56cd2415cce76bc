package handler

import (
	"errors"
	"net/http"
	"time"

	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// Clock 返回当前时间，测试里可替换
type Clock func() time.Time

func clockOrNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// writeStoreError 把 store 的错误映射为 HTTP 响应
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidDocument):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "导入文件无效")
	case errors.Is(err, store.ErrInvalidTransition):
		util.Error(c, http.StatusConflict, util.CodeConflict, "状态不允许此操作")
	case errors.Is(err, store.ErrClosed):
		util.Error(c, http.StatusServiceUnavailable, util.CodeUnavailable, "服务正在关闭")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败")
	}
}

// respondCreated 空 id 表示缺少必填字段，store 未创建任何记录
func respondCreated(c *gin.Context, id string, err error) {
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "缺少必填字段")
		return
	}
	util.Created(c, util.Response{"id": id})
}

func respondDone(c *gin.Context, err error) {
	if err != nil {
		writeStoreError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "ok"})
}

func badParam(c *gin.Context, msg string) {
	util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
}
