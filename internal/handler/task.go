package handler

import (
	"net/http"

	"household-ledger/internal/ledger"
	"household-ledger/internal/models"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TaskHandler 待办事项接口
type TaskHandler struct {
	Store *store.Store
	Now   Clock
}

func NewTaskHandler(st *store.Store, clock Clock) *TaskHandler {
	return &TaskHandler{Store: st, Now: clockOrNow(clock)}
}

type taskResp struct {
	models.Task
	Overdue bool `json:"atrasada"`
}

type createTaskReq struct {
	Title       string          `json:"titulo"`
	Description string          `json:"descricao"`
	Category    string          `json:"categoria"`
	Priority    models.Priority `json:"prioridade"`
	DueDate     string          `json:"data_vencimento"`
}

func validateTaskFields(priority *models.Priority, dueDate *string, category *string) string {
	if priority != nil && *priority != "" && !priority.Valid() {
		return "优先级无效"
	}
	if dueDate != nil {
		if err := util.ValidateOptionalDate(*dueDate); err != nil {
			return "日期格式错误，应为 YYYY-MM-DD"
		}
	}
	if category != nil {
		if err := util.ValidateCategory(*category); err != nil {
			return "分类过长"
		}
	}
	return ""
}

// ListTasks ?status=&prioridade=&categoria=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var f ledger.TaskFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badParam(c, "参数错误")
		return
	}

	today := h.Now()
	all := h.Store.Household().Tasks
	filtered := ledger.FilterTasks(all, f)

	items := make([]taskResp, 0, len(filtered))
	for _, t := range filtered {
		items = append(items, taskResp{Task: t, Overdue: ledger.IsOverdue(t, today)})
	}

	util.Success(c, util.Response{
		"items":      items,
		"counts":     ledger.CountTasks(filtered, today),
		"completion": ledger.CompletionPercent(all),
		"categories": ledger.TaskCategories(all),
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateTaskFields(&req.Priority, &req.DueDate, &req.Category); msg != "" {
		badParam(c, msg)
		return
	}

	id, err := h.Store.AddTask(c.Request.Context(), models.Task{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	respondCreated(c, id, err)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateTaskFields(patch.Priority, patch.DueDate, patch.Category); msg != "" {
		badParam(c, msg)
		return
	}
	if patch.Status != nil && *patch.Status != models.TaskPending && *patch.Status != models.TaskDone {
		badParam(c, "状态无效")
		return
	}
	respondDone(c, h.Store.UpdateTask(c.Request.Context(), c.Param("id"), patch))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	respondDone(c, h.Store.ToggleTask(c.Request.Context(), c.Param("id")))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	respondDone(c, h.Store.DeleteTask(c.Request.Context(), c.Param("id")))
}

type taskIncomeReq struct {
	Amount     decimal.Decimal `json:"valor"`
	CategoryID string          `json:"categoria_id"`
}

// RecordIncome 完成任务并记一笔收入
func (h *TaskHandler) RecordIncome(c *gin.Context) {
	var req taskIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		badParam(c, "金额无效")
		return
	}

	id := c.Param("id")
	var task *models.Task
	for _, t := range h.Store.Household().Tasks {
		if t.ID == id {
			t := t
			task = &t
			break
		}
	}
	if task == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "任务不存在")
		return
	}

	ctx := c.Request.Context()
	if task.Status != models.TaskDone {
		done := models.TaskDone
		if err := h.Store.UpdateTask(ctx, id, models.TaskPatch{Status: &done}); err != nil {
			writeStoreError(c, err)
			return
		}
	}
	txID, err := h.Store.RecordTaskIncome(ctx, id, task.Title, req.Amount, req.CategoryID)
	respondCreated(c, txID, err)
}
