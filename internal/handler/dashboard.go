package handler

import (
	"household-ledger/internal/ledger"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Store *store.Store
	Now   Clock
}

func NewDashboardHandler(st *store.Store, clock Clock) *DashboardHandler {
	return &DashboardHandler{Store: st, Now: clockOrNow(clock)}
}

// GetDashboard 首页概览
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d := ledger.BuildDashboard(h.Store.Household(), h.Store.Finance(), h.Now())
	util.Success(c, util.Response{
		"dashboard": d,
		"theme":     h.Store.Theme(),
	})
}
