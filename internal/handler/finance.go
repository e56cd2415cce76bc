package handler

import (
	"time"

	"household-ledger/internal/ledger"
	"household-ledger/internal/models"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FinanceHandler 交易、分类、储蓄目标与月度汇总
type FinanceHandler struct {
	Store *store.Store
	Now   Clock
}

func NewFinanceHandler(st *store.Store, clock Clock) *FinanceHandler {
	return &FinanceHandler{Store: st, Now: clockOrNow(clock)}
}

// parseMonthQuery 月份参数：?month=2024-03，缺省为当前月；格式错误时已写入响应
func parseMonthQuery(c *gin.Context, now time.Time) (ledger.Window, bool) {
	monthStr := c.Query("month")
	if monthStr == "" {
		return ledger.MonthOf(now), true
	}
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		badParam(c, "月份格式错误，应为 YYYY-MM")
		return ledger.Window{}, false
	}
	return ledger.MonthOf(t), true
}

// ---------- 汇总 ----------

func (h *FinanceHandler) GetSummary(c *gin.Context) {
	now := h.Now()
	w, ok := parseMonthQuery(c, now)
	if !ok {
		return
	}

	fin := h.Store.Finance()
	util.Success(c, util.Response{
		"summary":     ledger.Summarize(fin, w, now),
		"daily":       ledger.DailyTotals(fin.Transactions, w),
		"saldo_total": ledger.OverallBalance(fin.Transactions),
	})
}

// ---------- 交易 ----------

// ListTransactions ?start=&end=&categoria_id=&tipo=
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if err := util.ValidateOptionalDate(start); err != nil {
		badParam(c, "开始日期格式错误，应为 YYYY-MM-DD")
		return
	}
	if err := util.ValidateOptionalDate(end); err != nil {
		badParam(c, "结束日期格式错误，应为 YYYY-MM-DD")
		return
	}

	txs := h.Store.Finance().Transactions
	if start != "" || end != "" {
		txs = ledger.TransactionsInPeriod(txs, start, end)
	}
	if catID := c.Query("categoria_id"); catID != "" {
		txs = ledger.TransactionsByCategory(txs, catID)
	}
	if typ := models.EntryType(c.Query("tipo")); typ != "" {
		if !typ.Valid() {
			badParam(c, "类型无效")
			return
		}
		filtered := make([]models.Transaction, 0, len(txs))
		for _, t := range txs {
			if t.Type == typ {
				filtered = append(filtered, t)
			}
		}
		txs = filtered
	}
	if txs == nil {
		txs = []models.Transaction{}
	}

	util.Success(c, util.Response{"items": txs})
}

type transactionReq struct {
	Description string           `json:"descricao"`
	Amount      decimal.Decimal  `json:"valor"`
	Type        models.EntryType `json:"tipo"`
	CategoryID  string           `json:"categoria_id"`
	Date        string           `json:"data"`
	Note        string           `json:"observacao"`
}

func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		badParam(c, "金额无效")
		return
	}
	if !req.Type.Valid() {
		badParam(c, "类型必须为 receita 或 despesa")
		return
	}
	if err := util.ValidateOptionalDate(req.Date); err != nil {
		badParam(c, "日期格式错误，应为 YYYY-MM-DD")
		return
	}

	id, err := h.Store.AddTransaction(c.Request.Context(), models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Note:        req.Note,
	})
	respondCreated(c, id, err)
}

func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	var patch models.TransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if patch.Amount != nil {
		if err := util.ValidateAmount(*patch.Amount); err != nil {
			badParam(c, "金额无效")
			return
		}
	}
	if patch.Type != nil && !patch.Type.Valid() {
		badParam(c, "类型必须为 receita 或 despesa")
		return
	}
	if patch.Date != nil {
		if err := util.ValidateDate(*patch.Date); err != nil {
			badParam(c, "日期格式错误，应为 YYYY-MM-DD")
			return
		}
	}
	respondDone(c, h.Store.UpdateTransaction(c.Request.Context(), c.Param("id"), patch))
}

func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	respondDone(c, h.Store.DeleteTransaction(c.Request.Context(), c.Param("id")))
}

// ---------- 分类 ----------

// ListCategories ?tipo=receita|despesa
func (h *FinanceHandler) ListCategories(c *gin.Context) {
	cats := h.Store.Finance().Categories
	if typ := models.EntryType(c.Query("tipo")); typ != "" {
		if !typ.Valid() {
			badParam(c, "类型无效")
			return
		}
		cats = ledger.CategoriesByType(cats, typ)
	}
	util.Success(c, util.Response{"items": cats})
}

type categoryReq struct {
	Name  string           `json:"nome"`
	Type  models.EntryType `json:"tipo"`
	Color string           `json:"cor"`
	Icon  string           `json:"icone"`
}

func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if !req.Type.Valid() {
		badParam(c, "类型必须为 receita 或 despesa")
		return
	}
	id, err := h.Store.AddCategory(c.Request.Context(), models.Category{
		Name:  req.Name,
		Type:  req.Type,
		Color: req.Color,
		Icon:  req.Icon,
	})
	respondCreated(c, id, err)
}

func (h *FinanceHandler) UpdateCategory(c *gin.Context) {
	var patch models.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if patch.Type != nil && !patch.Type.Valid() {
		badParam(c, "类型必须为 receita 或 despesa")
		return
	}
	respondDone(c, h.Store.UpdateCategory(c.Request.Context(), c.Param("id"), patch))
}

// DeleteCategory 引用该分类的交易保留原 id，汇总时归入“Sem categoria”
func (h *FinanceHandler) DeleteCategory(c *gin.Context) {
	respondDone(c, h.Store.DeleteCategory(c.Request.Context(), c.Param("id")))
}

// ---------- 储蓄目标 ----------

type goalResp struct {
	models.Goal
	Progress decimal.Decimal `json:"progresso"`
	DaysLeft *int            `json:"dias_restantes,omitempty"`
}

func (h *FinanceHandler) ListGoals(c *gin.Context) {
	now := h.Now()
	goals := h.Store.Finance().Goals
	status := models.GoalStatus(c.Query("status"))

	items := make([]goalResp, 0, len(goals))
	for _, g := range goals {
		if status != "" && g.Status != status {
			continue
		}
		r := goalResp{Goal: g, Progress: ledger.GoalProgress(g)}
		if days, ok := ledger.DaysBetween(now, g.Deadline); ok {
			r.DaysLeft = &days
		}
		items = append(items, r)
	}
	util.Success(c, util.Response{"items": items})
}

type goalReq struct {
	Title       string          `json:"titulo"`
	Description string          `json:"descricao"`
	Target      decimal.Decimal `json:"valor_objetivo"`
	Current     decimal.Decimal `json:"valor_atual"`
	StartDate   string          `json:"data_inicio"`
	Deadline    string          `json:"data_limite"`
	Category    string          `json:"categoria"`
}

func validateGoalAmounts(target, current *decimal.Decimal) string {
	if target != nil {
		if err := util.ValidateAmount(*target); err != nil {
			return "目标金额无效"
		}
	}
	if current != nil {
		if err := util.ValidateAmount(*current); err != nil {
			return "当前金额无效"
		}
	}
	return ""
}

func (h *FinanceHandler) CreateGoal(c *gin.Context) {
	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateGoalAmounts(&req.Target, &req.Current); msg != "" {
		badParam(c, msg)
		return
	}
	if err := util.ValidateOptionalDate(req.StartDate); err != nil {
		badParam(c, "开始日期格式错误，应为 YYYY-MM-DD")
		return
	}
	if err := util.ValidateOptionalDate(req.Deadline); err != nil {
		badParam(c, "截止日期格式错误，应为 YYYY-MM-DD")
		return
	}

	id, err := h.Store.AddGoal(c.Request.Context(), models.Goal{
		Title:       req.Title,
		Description: req.Description,
		Target:      req.Target,
		Current:     req.Current,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
		Category:    req.Category,
	})
	respondCreated(c, id, err)
}

func (h *FinanceHandler) UpdateGoal(c *gin.Context) {
	var patch models.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	if msg := validateGoalAmounts(patch.Target, patch.Current); msg != "" {
		badParam(c, msg)
		return
	}
	respondDone(c, h.Store.UpdateGoal(c.Request.Context(), c.Param("id"), patch))
}

type goalProgressReq struct {
	Current decimal.Decimal `json:"valor_atual"`
}

func (h *FinanceHandler) UpdateGoalProgress(c *gin.Context) {
	var req goalProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if err := util.ValidateAmount(req.Current); err != nil {
		badParam(c, "当前金额无效")
		return
	}
	respondDone(c, h.Store.UpdateGoalProgress(c.Request.Context(), c.Param("id"), req.Current))
}

type goalStatusReq struct {
	Status models.GoalStatus `json:"status" binding:"required"`
}

// SetGoalStatus 已完成的目标不能再变更状态，返回 409
func (h *FinanceHandler) SetGoalStatus(c *gin.Context) {
	var req goalStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	switch req.Status {
	case models.GoalActive, models.GoalPaused, models.GoalCompleted:
	default:
		badParam(c, "状态无效")
		return
	}
	respondDone(c, h.Store.SetGoalStatus(c.Request.Context(), c.Param("id"), req.Status))
}

func (h *FinanceHandler) DeleteGoal(c *gin.Context) {
	respondDone(c, h.Store.DeleteGoal(c.Request.Context(), c.Param("id")))
}
