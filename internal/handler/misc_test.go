package handler

import (
	"net/http"
	"testing"

	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	hash, err := util.HashPassword("familia-silva")
	require.NoError(t, err)

	r := newEngine()
	r.POST("/token", NewAuthHandler(hash, "secret", 0).IssueToken)

	w := doJSON(t, r, http.MethodPost, "/token", gin.H{"passphrase": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/token", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/token", gin.H{"passphrase": "familia-silva"})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	decode(t, w, &out)
	assert.Equal(t, 24*3600, out.ExpiresIn)
	_, err = util.ParseToken("secret", out.Token)
	assert.NoError(t, err)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "hl_token=")
}

func TestIssueToken_Disabled(t *testing.T) {
	r := newEngine()
	r.POST("/token", NewAuthHandler("", "secret", 24).IssueToken)

	w := doJSON(t, r, http.MethodPost, "/token", gin.H{"passphrase": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemote_Unconfigured(t *testing.T) {
	h := NewRemoteHandler(nil)
	r := newEngine()
	r.GET("/remote/tasks", h.ListTasks)
	r.POST("/remote/items", h.CreateItem)

	w := doJSON(t, r, http.MethodGet, "/remote/tasks", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, util.CodeUnavailable, env.Code)

	w = doJSON(t, r, http.MethodPost, "/remote/items", gin.H{"nome": "Leite"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDashboard(t *testing.T) {
	st, _ := newTestStore(t)
	tasks := NewTaskHandler(st, testClock)
	r := newEngine()
	r.POST("/tasks", tasks.CreateTask)
	r.GET("/dashboard", NewDashboardHandler(st, testClock).GetDashboard)

	createdID(t, doJSON(t, r, http.MethodPost, "/tasks", gin.H{"titulo": "Hoje", "data_vencimento": "2024-03-15"}))
	createdID(t, doJSON(t, r, http.MethodPost, "/tasks", gin.H{"titulo": "Semana", "data_vencimento": "2024-03-19"}))

	w := doJSON(t, r, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Theme string `json:"theme"`
		Dash  struct {
			Today     string        `json:"hoje"`
			DueToday  []interface{} `json:"tarefas_hoje"`
			DueInWeek []interface{} `json:"tarefas_semana"`
		} `json:"dashboard"`
	}
	decode(t, w, &out)
	assert.Equal(t, "light", out.Theme)
	assert.Equal(t, "2024-03-15", out.Dash.Today)
	assert.Len(t, out.Dash.DueToday, 1)
	assert.Len(t, out.Dash.DueInWeek, 2)
}
