package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"familybudget/database"
	"familybudget/middleware"
	"familybudget/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 账目导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// queryExportExpenses 读取导出范围内的家庭支出，按日期倒序
func (h *ExportHandler) queryExportExpenses(c *gin.Context) ([]models.Expense, bool) {
	userID := middleware.GetCurrentUserID(c)

	familyID, ok := parseFamilyID(c)
	if !ok {
		return nil, false
	}
	if _, err := getMembership(userID, familyID); err != nil {
		Forbidden(c, "Not a family member")
		return nil, false
	}

	query := database.DB.Where("family_id = ?", familyID)

	if raw := c.Query("start"); raw != "" {
		start, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			BadRequest(c, "Invalid start date, expected 2006-01-02")
			return nil, false
		}
		query = query.Where("date >= ?", start)
	}
	if raw := c.Query("end"); raw != "" {
		end, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			BadRequest(c, "Invalid end date, expected 2006-01-02")
			return nil, false
		}
		// 包含结束日期当天
		end = end.Add(24*time.Hour - time.Second)
		query = query.Where("date <= ?", end)
	}

	var expenses []models.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return nil, false
	}
	for i := range expenses {
		expenses[i].Amount = models.Round2(expenses[i].Amount)
	}
	return expenses, true
}

// ExportCSV 导出家庭支出为 CSV
// @Summary 导出家庭支出为 CSV
// @Description 导出指定家庭的支出记录，可选 start/end 日期范围。仅家庭成员可导出。
// @Tags export
// @Produce text/csv
// @Param familyId query int true "家庭ID"
// @Param start query string false "开始日期 (2006-01-02)"
// @Param end query string false "结束日期 (2006-01-02)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, ok := h.queryExportExpenses(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM 让 Excel 正确识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Description", "Amount", "Category", "Date", "Member"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Export failed")
		return
	}

	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Description,
			fmt.Sprintf("%.2f", expense.Amount),
			expense.Category,
			expense.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", expense.FamilyMemberID),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Export failed")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Export failed")
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX 导出家庭支出为 Excel
// @Summary 导出家庭支出为 Excel
// @Description 导出指定家庭的支出记录为带汇总行的 xlsx 工作簿
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param familyId query int true "家庭ID"
// @Param start query string false "开始日期 (2006-01-02)"
// @Param end query string false "结束日期 (2006-01-02)"
// @Success 200 {file} file "xlsx 文件"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	expenses, ok := h.queryExportExpenses(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 10)

	headers := []string{"ID", "Description", "Amount", "Category", "Date", "Member"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount float64
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.FamilyMemberID)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		totalAmount += expense.Amount
	}

	// 汇总行
	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), models.Round2(totalAmount))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(expenses)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Export failed")
		return
	}
}
