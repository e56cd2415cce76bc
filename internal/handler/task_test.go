package handler

import (
	"net/http"
	"testing"

	"household-ledger/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskEngine(h *TaskHandler) *gin.Engine {
	r := newEngine()
	r.GET("/tasks", h.ListTasks)
	r.POST("/tasks", h.CreateTask)
	r.PUT("/tasks/:id", h.UpdateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)
	r.POST("/tasks/:id/toggle", h.ToggleTask)
	r.POST("/tasks/:id/income", h.RecordIncome)
	return r
}

func TestCreateTask_Validation(t *testing.T) {
	st, _ := newTestStore(t)
	r := taskEngine(NewTaskHandler(st, testClock))

	cases := []struct {
		name string
		body string
		code int
	}{
		{"无标题", `{"titulo":"  "}`, http.StatusBadRequest},
		{"优先级无效", `{"titulo":"Lavar","prioridade":"urgente"}`, http.StatusBadRequest},
		{"日期格式错误", `{"titulo":"Lavar","data_vencimento":"15/03/2024"}`, http.StatusBadRequest},
		{"非 JSON", `titulo=Lavar`, http.StatusBadRequest},
		{"正常", `{"titulo":"Lavar roupa","data_vencimento":"2024-03-20"}`, http.StatusCreated},
	}
	for _, c := range cases {
		w := doJSON(t, r, http.MethodPost, "/tasks", c.body)
		assert.Equal(t, c.code, w.Code, c.name)
	}
	assert.Len(t, st.Household().Tasks, 1)
	assert.Equal(t, models.PriorityMedium, st.Household().Tasks[0].Priority)
}

func TestListTasks_FilterAndOverdue(t *testing.T) {
	st, _ := newTestStore(t)
	r := taskEngine(NewTaskHandler(st, testClock))

	createdID(t, doJSON(t, r, http.MethodPost, "/tasks", gin.H{"titulo": "Pagar luz", "data_vencimento": "2024-03-10", "categoria": "Contas"}))
	createdID(t, doJSON(t, r, http.MethodPost, "/tasks", gin.H{"titulo": "Regar plantas", "prioridade": "alta"}))

	w := doJSON(t, r, http.MethodGet, "/tasks?status=pendente", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Items []struct {
			Title   string `json:"titulo"`
			Overdue bool   `json:"atrasada"`
		} `json:"items"`
		Counts struct {
			Pending int `json:"pendentes"`
			Overdue int `json:"atrasadas"`
		} `json:"counts"`
		Categories []string `json:"categories"`
	}
	decode(t, w, &out)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "Pagar luz", out.Items[0].Title)
	assert.True(t, out.Items[0].Overdue)
	assert.False(t, out.Items[1].Overdue)
	assert.Equal(t, 2, out.Counts.Pending)
	assert.Equal(t, 1, out.Counts.Overdue)
	assert.Equal(t, []string{"Contas"}, out.Categories)

	w = doJSON(t, r, http.MethodGet, "/tasks?prioridade=alta", nil)
	decode(t, w, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Regar plantas", out.Items[0].Title)
}

func TestToggleAndUpdateTask(t *testing.T) {
	st, _ := newTestStore(t)
	r := taskEngine(NewTaskHandler(st, testClock))
	id := createdID(t, doJSON(t, r, http.MethodPost, "/tasks", gin.H{"titulo": "Limpar"}))

	w := doJSON(t, r, http.MethodPost, "/tasks/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.TaskDone, st.Household().Tasks[0].Status)

	w = doJSON(t, r, http.MethodPut, "/tasks/"+id, `{"status":"talvez"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/tasks/"+id, `{"titulo":"Limpar cozinha"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Limpar cozinha", st.Household().Tasks[0].Title)

	w = doJSON(t, r, http.MethodDelete, "/tasks/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.Household().Tasks)
}

func TestRecordIncome(t *testing.T) {
	st, _ := newTestStore(t)
	r := taskEngine(NewTaskHandler(st, testClock))
	id := createdID(t, doJSON(t, r, http.MethodPost, "/tasks", gin.H{"titulo": "Vender bolo"}))

	w := doJSON(t, r, http.MethodPost, "/tasks/missing/income", `{"valor":10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/tasks/"+id+"/income", `{"valor":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/tasks/"+id+"/income", `{"valor":45.5,"categoria_id":"cat-freelance"}`)
	createdID(t, w)

	assert.Equal(t, models.TaskDone, st.Household().Tasks[0].Status)
	txs := st.Finance().Transactions
	require.Len(t, txs, 1)
	assert.Equal(t, models.OriginTask, txs[0].Origin)
	assert.Equal(t, id, txs[0].OriginID)
	assert.Equal(t, models.Income, txs[0].Type)
	assert.Equal(t, "45.5", txs[0].Amount.String())
}
