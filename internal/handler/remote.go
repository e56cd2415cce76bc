package handler

import (
	"errors"
	"net/http"

	"household-ledger/internal/models"
	"household-ledger/internal/remote"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// RemoteHandler 托管版 Datastore 上的任务与购物条目；未配置 project_id 时返回 503
type RemoteHandler struct {
	Client *remote.Client
}

func NewRemoteHandler(client *remote.Client) *RemoteHandler {
	return &RemoteHandler{Client: client}
}

func (h *RemoteHandler) ready(c *gin.Context) bool {
	if h.Client == nil {
		util.Error(c, http.StatusServiceUnavailable, util.CodeUnavailable, "未启用远程存储")
		return false
	}
	return true
}

func (h *RemoteHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, remote.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		return
	}
	util.Error(c, http.StatusBadGateway, util.CodeServerErr, "远程存储错误")
}

func (h *RemoteHandler) ListTasks(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	tasks, err := h.Client.ListTasks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	util.Success(c, util.Response{"items": tasks})
}

func (h *RemoteHandler) CreateTask(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if req.Title == "" {
		badParam(c, "缺少必填字段")
		return
	}
	if msg := validateTaskFields(&req.Priority, &req.DueDate, &req.Category); msg != "" {
		badParam(c, msg)
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	task, err := h.Client.CreateTask(c.Request.Context(), models.Task{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Status:      models.TaskPending,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	util.Created(c, util.Response{"task": task})
}

func (h *RemoteHandler) UpdateTask(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateTaskFields(patch.Priority, patch.DueDate, patch.Category); msg != "" {
		badParam(c, msg)
		return
	}
	if err := h.Client.UpdateTask(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.writeError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "ok"})
}

func (h *RemoteHandler) DeleteTask(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	if err := h.Client.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "ok"})
}

// ListItems ?lista_id= 必填
func (h *RemoteHandler) ListItems(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	listID := c.Query("lista_id")
	if listID == "" {
		badParam(c, "缺少 lista_id")
		return
	}
	items, err := h.Client.ListItems(c.Request.Context(), listID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	util.Success(c, util.Response{"items": items})
}

type remoteItemReq struct {
	ListID   string `json:"lista_id"`
	Name     string `json:"nome"`
	Quantity string `json:"quantidade"`
	Note     string `json:"observacao"`
}

func (h *RemoteHandler) CreateItem(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	var req remoteItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if req.ListID == "" || req.Name == "" {
		badParam(c, "缺少必填字段")
		return
	}
	item, err := h.Client.CreateItem(c.Request.Context(), models.ShoppingItem{
		ListID:   req.ListID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Note:     req.Note,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	util.Created(c, util.Response{"item": item})
}

func (h *RemoteHandler) UpdateItem(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	var patch models.ShoppingItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if err := h.Client.UpdateItem(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.writeError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "ok"})
}

func (h *RemoteHandler) DeleteItem(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	if err := h.Client.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "ok"})
}
