package handler

import (
	"net/http"
	"testing"

	"household-ledger/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoppingEngine(h *ShoppingHandler) *gin.Engine {
	r := newEngine()
	r.GET("/lists", h.ListLists)
	r.POST("/lists", h.CreateList)
	r.PUT("/lists/:id", h.RenameList)
	r.DELETE("/lists/:id", h.DeleteList)
	r.POST("/lists/:id/duplicate", h.DuplicateList)
	r.GET("/lists/:id/items", h.ListItems)
	r.POST("/lists/:id/items", h.CreateItem)
	r.POST("/items/:id/toggle", h.ToggleItem)
	r.POST("/items/:id/purchase", h.PurchaseItem)
	return r
}

func TestShopping_ListLifecycle(t *testing.T) {
	st, _ := newTestStore(t)
	r := shoppingEngine(NewShoppingHandler(st))

	w := doJSON(t, r, http.MethodPost, "/lists", gin.H{"nome": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	listID := createdID(t, doJSON(t, r, http.MethodPost, "/lists", gin.H{"nome": "Feira"}))
	itemID := createdID(t, doJSON(t, r, http.MethodPost, "/lists/"+listID+"/items", gin.H{"nome": "Tomate", "quantidade": "1kg"}))
	createdID(t, doJSON(t, r, http.MethodPost, "/lists/"+listID+"/items", gin.H{"nome": "Alface"}))

	w = doJSON(t, r, http.MethodPost, "/items/"+itemID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lists struct {
		Items []struct {
			Name     string `json:"nome"`
			Progress struct {
				Purchased int `json:"comprados"`
				Total     int `json:"total"`
			} `json:"progresso"`
		} `json:"items"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/lists", nil), &lists)
	require.Len(t, lists.Items, 1)
	assert.Equal(t, 1, lists.Items[0].Progress.Purchased)
	assert.Equal(t, 2, lists.Items[0].Progress.Total)

	copyID := createdID(t, doJSON(t, r, http.MethodPost, "/lists/"+listID+"/duplicate", nil))
	var items struct {
		Items []models.ShoppingItem `json:"items"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/lists/"+copyID+"/items", nil), &items)
	require.Len(t, items.Items, 2)
	for _, it := range items.Items {
		assert.False(t, it.Purchased)
	}

	w = doJSON(t, r, http.MethodPost, "/lists/missing/duplicate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/lists/"+listID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, it := range st.Household().Items {
		assert.NotEqual(t, listID, it.ListID)
	}
}

func TestPurchaseItem_RecordsExpense(t *testing.T) {
	st, _ := newTestStore(t)
	r := shoppingEngine(NewShoppingHandler(st))

	listID := createdID(t, doJSON(t, r, http.MethodPost, "/lists", gin.H{"nome": "Mercado"}))
	itemID := createdID(t, doJSON(t, r, http.MethodPost, "/lists/"+listID+"/items", gin.H{"nome": "Arroz"}))

	w := doJSON(t, r, http.MethodPost, "/items/nope/purchase", `{"valor":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	createdID(t, doJSON(t, r, http.MethodPost, "/items/"+itemID+"/purchase", `{"valor":23.9,"categoria_id":"cat-alimentacao"}`))

	assert.True(t, st.Household().Items[0].Purchased)
	txs := st.Finance().Transactions
	require.Len(t, txs, 1)
	assert.Equal(t, "Arroz", txs[0].Description)
	assert.Equal(t, models.Expense, txs[0].Type)
	assert.Equal(t, models.OriginPurchase, txs[0].Origin)
	assert.Equal(t, "2024-03-15", txs[0].Date)
}
