package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"

	"household-ledger/internal/models"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportExportHandler 导出交易明细为 CSV / XLSX
type ImportExportHandler struct {
	Store *store.Store
	Now   Clock
}

func NewImportExportHandler(st *store.Store, clock Clock) *ImportExportHandler {
	return &ImportExportHandler{Store: st, Now: clockOrNow(clock)}
}

var exportHeaders = []string{"Data", "Descrição", "Categoria", "Tipo", "Valor", "Origem", "Observação"}

// rows 按日期倒序生成导出行；?month=YYYY-MM 只导出该月
func (h *ImportExportHandler) rows(c *gin.Context) ([][]string, string, bool) {
	fin := h.Store.Finance()
	txs := fin.Transactions
	suffix := "todas"

	if c.Query("month") != "" {
		w, ok := parseMonthQuery(c, h.Now())
		if !ok {
			return nil, "", false
		}
		var inMonth []models.Transaction
		for _, t := range txs {
			if w.Contains(t.Date) {
				inMonth = append(inMonth, t)
			}
		}
		txs = inMonth
		suffix = fmt.Sprintf("%04d-%02d", w.Year, int(w.Month))
	}

	names := make(map[string]string, len(fin.Categories))
	for _, cat := range fin.Categories {
		names[cat.ID] = cat.Name
	}

	sorted := append([]models.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	out := make([][]string, 0, len(sorted))
	for _, t := range sorted {
		typeText := "Despesa"
		if t.Type == models.Income {
			typeText = "Receita"
		}
		category, ok := names[t.CategoryID]
		if !ok {
			category = "Sem categoria"
		}
		out = append(out, []string{
			t.Date,
			t.Description,
			category,
			typeText,
			t.Amount.StringFixed(2),
			string(t.Origin),
			t.Note,
		})
	}
	return out, suffix, true
}

// ExportCSV 导出交易为 CSV
func (h *ImportExportHandler) ExportCSV(c *gin.Context) {
	rows, suffix, ok := h.rows(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transacoes_%s.csv\"", suffix))

	// UTF-8 BOM（让 Excel 正确识别重音字符）
	_, _ = c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(exportHeaders)
	_ = writer.WriteAll(rows)
}

// ExportXLSX 导出交易为 XLSX
func (h *ImportExportHandler) ExportXLSX(c *gin.Context) {
	rows, suffix, ok := h.rows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheetName := "Transações"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	// 表头
	for i, name := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, name)
	}

	for idx, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, idx+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	// 列宽
	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 30)
	_ = f.SetColWidth(sheetName, "C", "C", 16)
	_ = f.SetColWidth(sheetName, "D", "D", 10)
	_ = f.SetColWidth(sheetName, "E", "E", 12)
	_ = f.SetColWidth(sheetName, "F", "F", 10)
	_ = f.SetColWidth(sheetName, "G", "G", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transacoes_%s.xlsx\"", suffix))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
	}
}
