package api

import (
	"strconv"
	"time"

	"familybudget/database"
	"familybudget/middleware"
	"familybudget/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建支出请求
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required" example:"Milk"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"2.99"`
	Category    string  `json:"category" binding:"required" example:"groceries"`
	Date        string  `json:"date" example:"2026-08-30"`
	FamilyID    uint    `json:"familyId" binding:"required" example:"1"`
}

// ExpenseResponse 支出响应包装
type ExpenseResponse struct {
	Expense models.Expense `json:"expense"`
}

// ExpensesResponse 支出列表响应包装
type ExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

// parseEntryDate 解析账目日期，支持日期和 RFC3339 两种格式，缺省为当前时间
func parseEntryDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Now(), true
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseFamilyID 读取并解析 familyId 查询参数
func parseFamilyID(c *gin.Context) (uint, bool) {
	raw := c.Query("familyId")
	if raw == "" {
		BadRequest(c, "familyId required")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		BadRequest(c, "familyId required")
		return 0, false
	}
	return uint(id), true
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 记录一笔家庭支出，金额写入时保留两位小数。记录不可修改，更正需要冲账。
// @Tags expenses
// @Accept json
// @Produce json
// @Success 200 {object} ExpenseResponse "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ValidationMessage(err))
		return
	}

	membership, err := getMembership(userID, req.FamilyID)
	if err != nil {
		Forbidden(c, "Not a family member")
		return
	}

	date, ok := parseEntryDate(req.Date)
	if !ok {
		BadRequest(c, "Invalid date format, expected 2006-01-02")
		return
	}

	expense := models.Expense{
		Description:    req.Description,
		Amount:         models.Round2(req.Amount),
		Category:       req.Category,
		Date:           date,
		UserID:         userID,
		FamilyID:       req.FamilyID,
		FamilyMemberID: membership.ID,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	Success(c, ExpenseResponse{Expense: expense})
}

// List 获取家庭支出列表
// @Summary 获取家庭支出列表
// @Description 返回指定家庭的全部支出，按日期倒序。仅家庭成员可访问。
// @Tags expenses
// @Produce json
// @Param familyId query int true "家庭ID"
// @Success 200 {object} ExpensesResponse "获取成功"
// @Failure 400 {object} ErrorResponse "缺少 familyId"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	familyID, ok := parseFamilyID(c)
	if !ok {
		return
	}

	if _, err := getMembership(userID, familyID); err != nil {
		Forbidden(c, "Not a family member")
		return
	}

	expenses := make([]models.Expense, 0)
	if err := database.DB.Where("family_id = ?", familyID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	// 读取时再次取整，历史数据的精度问题不外泄
	for i := range expenses {
		expenses[i].Amount = models.Round2(expenses[i].Amount)
	}

	Success(c, ExpensesResponse{Expenses: expenses})
}

// GetCategories 获取支出类别候选列表
// @Summary 获取支出类别候选列表
// @Description 前端表单使用的固定类别集合，存储时类别为自由字符串
// @Tags expenses
// @Produce json
// @Success 200 {object} map[string][]string "获取成功"
// @Router /categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	Success(c, gin.H{"categories": models.GetCategories()})
}
