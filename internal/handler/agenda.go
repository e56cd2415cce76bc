package handler

import (
	"household-ledger/internal/ledger"
	"household-ledger/internal/models"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// AgendaHandler 事件与提醒
type AgendaHandler struct {
	Store *store.Store
	Now   Clock
}

func NewAgendaHandler(st *store.Store, clock Clock) *AgendaHandler {
	return &AgendaHandler{Store: st, Now: clockOrNow(clock)}
}

func agendaFilter(c *gin.Context) ledger.AgendaFilter {
	return ledger.AgendaFilter{
		Range:    ledger.ParseDateRange(c.DefaultQuery("range", "all")),
		Category: c.Query("categoria"),
	}
}

// ListEvents ?range=all|today|week|month&categoria=；?date=YYYY-MM-DD 返回当天开始或结束的事件
func (h *AgendaHandler) ListEvents(c *gin.Context) {
	events := h.Store.Household().Events

	if date := c.Query("date"); date != "" {
		if err := util.ValidateDate(date); err != nil {
			badParam(c, "日期格式错误，应为 YYYY-MM-DD")
			return
		}
		util.Success(c, util.Response{"items": ledger.EventsOn(events, date)})
		return
	}

	today := h.Now()
	filtered := ledger.FilterEvents(events, agendaFilter(c), today)
	util.Success(c, util.Response{
		"items":      filtered,
		"grupos":     ledger.PartitionEvents(filtered, today),
		"categories": ledger.EventCategories(events),
	})
}

type eventReq struct {
	Title       string `json:"titulo"`
	StartDate   string `json:"data_inicio"`
	EndDate     string `json:"data_fim"`
	Category    string `json:"categoria"`
	Description string `json:"descricao"`
}

func validateEventDates(start, end *string) string {
	if start != nil && *start != "" {
		if err := util.ValidateDate(*start); err != nil {
			return "开始日期格式错误，应为 YYYY-MM-DD"
		}
	}
	if end != nil {
		if err := util.ValidateOptionalDate(*end); err != nil {
			return "结束日期格式错误，应为 YYYY-MM-DD"
		}
	}
	if start != nil && end != nil && *start != "" && *end != "" && *end < *start {
		return "结束日期不能早于开始日期"
	}
	return ""
}

func (h *AgendaHandler) CreateEvent(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateEventDates(&req.StartDate, &req.EndDate); msg != "" {
		badParam(c, msg)
		return
	}
	id, err := h.Store.AddEvent(c.Request.Context(), models.Event{
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Category:    req.Category,
		Description: req.Description,
	})
	respondCreated(c, id, err)
}

func (h *AgendaHandler) UpdateEvent(c *gin.Context) {
	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateEventDates(patch.StartDate, patch.EndDate); msg != "" {
		badParam(c, msg)
		return
	}
	respondDone(c, h.Store.UpdateEvent(c.Request.Context(), c.Param("id"), patch))
}

func (h *AgendaHandler) DeleteEvent(c *gin.Context) {
	respondDone(c, h.Store.DeleteEvent(c.Request.Context(), c.Param("id")))
}

// ListReminders 与 ListEvents 相同的筛选参数
func (h *AgendaHandler) ListReminders(c *gin.Context) {
	today := h.Now()
	filtered := ledger.FilterReminders(h.Store.Household().Reminders, agendaFilter(c), today)
	util.Success(c, util.Response{
		"items":  filtered,
		"grupos": ledger.PartitionReminders(filtered, today),
	})
}

type reminderReq struct {
	Title       string `json:"titulo"`
	Date        string `json:"data"`
	Time        string `json:"hora"`
	Category    string `json:"categoria"`
	Description string `json:"descricao"`
}

func validateReminder(date, clock *string) string {
	if date != nil && *date != "" {
		if err := util.ValidateDate(*date); err != nil {
			return "日期格式错误，应为 YYYY-MM-DD"
		}
	}
	if clock != nil && *clock != "" {
		if err := util.ValidateTime(*clock); err != nil {
			return "时间格式错误，应为 HH:mm"
		}
	}
	return ""
}

func (h *AgendaHandler) CreateReminder(c *gin.Context) {
	var req reminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateReminder(&req.Date, &req.Time); msg != "" {
		badParam(c, msg)
		return
	}
	id, err := h.Store.AddReminder(c.Request.Context(), models.Reminder{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Description: req.Description,
	})
	respondCreated(c, id, err)
}

func (h *AgendaHandler) UpdateReminder(c *gin.Context) {
	var patch models.ReminderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateReminder(patch.Date, patch.Time); msg != "" {
		badParam(c, msg)
		return
	}
	respondDone(c, h.Store.UpdateReminder(c.Request.Context(), c.Param("id"), patch))
}

func (h *AgendaHandler) DeleteReminder(c *gin.Context) {
	respondDone(c, h.Store.DeleteReminder(c.Request.Context(), c.Param("id")))
}
