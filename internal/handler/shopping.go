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

// ShoppingHandler 购物清单与条目
type ShoppingHandler struct {
	Store *store.Store
}

func NewShoppingHandler(st *store.Store) *ShoppingHandler {
	return &ShoppingHandler{Store: st}
}

type listResp struct {
	models.ShoppingList
	Progress ledger.ListProgress `json:"progresso"`
}

type listReq struct {
	Name string `json:"nome"`
}

func (h *ShoppingHandler) ListLists(c *gin.Context) {
	hh := h.Store.Household()
	items := make([]listResp, 0, len(hh.Lists))
	for _, l := range hh.Lists {
		items = append(items, listResp{ShoppingList: l, Progress: ledger.ProgressOf(hh.Items, l.ID)})
	}
	util.Success(c, util.Response{"items": items})
}

func (h *ShoppingHandler) CreateList(c *gin.Context) {
	var req listReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	id, err := h.Store.AddList(c.Request.Context(), req.Name)
	respondCreated(c, id, err)
}

func (h *ShoppingHandler) RenameList(c *gin.Context) {
	var req listReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	respondDone(c, h.Store.RenameList(c.Request.Context(), c.Param("id"), req.Name))
}

// DeleteList 同时删除清单下的全部条目
func (h *ShoppingHandler) DeleteList(c *gin.Context) {
	respondDone(c, h.Store.DeleteList(c.Request.Context(), c.Param("id")))
}

func (h *ShoppingHandler) DuplicateList(c *gin.Context) {
	id, err := h.Store.DuplicateList(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if id == "" {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "清单不存在")
		return
	}
	util.Created(c, util.Response{"id": id})
}

func (h *ShoppingHandler) ListItems(c *gin.Context) {
	listID := c.Param("id")
	hh := h.Store.Household()
	util.Success(c, util.Response{
		"items":     ledger.ItemsForList(hh.Items, listID),
		"progresso": ledger.ProgressOf(hh.Items, listID),
	})
}

type itemReq struct {
	Name     string `json:"nome"`
	Quantity string `json:"quantidade"`
	Note     string `json:"observacao"`
}

func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	id, err := h.Store.AddItem(c.Request.Context(), models.ShoppingItem{
		ListID:   c.Param("id"),
		Name:     req.Name,
		Quantity: req.Quantity,
		Note:     req.Note,
	})
	respondCreated(c, id, err)
}

func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	var patch models.ShoppingItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParam(c, "参数错误")
		return
	}
	respondDone(c, h.Store.UpdateItem(c.Request.Context(), c.Param("id"), patch))
}

func (h *ShoppingHandler) ToggleItem(c *gin.Context) {
	respondDone(c, h.Store.ToggleItemPurchased(c.Request.Context(), c.Param("id")))
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	respondDone(c, h.Store.DeleteItem(c.Request.Context(), c.Param("id")))
}

type purchaseReq struct {
	Amount     decimal.Decimal `json:"valor"`
	CategoryID string          `json:"categoria_id"`
}

// PurchaseItem 标记已购买并记一笔支出
func (h *ShoppingHandler) PurchaseItem(c *gin.Context) {
	var req purchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParam(c, "参数错误")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		badParam(c, "金额无效")
		return
	}

	id := c.Param("id")
	var item *models.ShoppingItem
	for _, it := range h.Store.Household().Items {
		if it.ID == id {
			it := it
			item = &it
			break
		}
	}
	if item == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "条目不存在")
		return
	}

	ctx := c.Request.Context()
	purchased := true
	if err := h.Store.UpdateItem(ctx, id, models.ShoppingItemPatch{Purchased: &purchased}); err != nil {
		writeStoreError(c, err)
		return
	}
	txID, err := h.Store.RecordPurchase(ctx, id, item.Name, req.Amount, req.CategoryID)
	respondCreated(c, txID, err)
}
