package api

import (
	"familybudget/database"
	"familybudget/middleware"
	"familybudget/models"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入记录处理器
type IncomeHandler struct{}

// NewIncomeHandler 创建收入记录处理器
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// CreateIncomeRequest 创建收入请求
type CreateIncomeRequest struct {
	Description string  `json:"description" binding:"required" example:"Salary"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"3000"`
	Source      string  `json:"source" binding:"required" example:"employer"`
	Date        string  `json:"date" example:"2026-08-30"`
	FamilyID    uint    `json:"familyId" binding:"required" example:"1"`
}

// IncomeResponse 收入响应包装
type IncomeResponse struct {
	Income models.Income `json:"income"`
}

// IncomesResponse 收入列表响应包装
type IncomesResponse struct {
	Incomes []models.Income `json:"incomes"`
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 记录一笔家庭收入，生命周期与支出一致（只增不改）
// @Tags incomes
// @Accept json
// @Produce json
// @Success 200 {object} IncomeResponse "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateIncomeRequest
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

	income := models.Income{
		Description:    req.Description,
		Amount:         models.Round2(req.Amount),
		Source:         req.Source,
		Date:           date,
		UserID:         userID,
		FamilyID:       req.FamilyID,
		FamilyMemberID: membership.ID,
	}

	if err := database.DB.Create(&income).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	Success(c, IncomeResponse{Income: income})
}

// List 获取家庭收入列表
// @Summary 获取家庭收入列表
// @Description 返回指定家庭的全部收入，按日期倒序。仅家庭成员可访问。
// @Tags incomes
// @Produce json
// @Param familyId query int true "家庭ID"
// @Success 200 {object} IncomesResponse "获取成功"
// @Failure 400 {object} ErrorResponse "缺少 familyId"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	familyID, ok := parseFamilyID(c)
	if !ok {
		return
	}

	if _, err := getMembership(userID, familyID); err != nil {
		Forbidden(c, "Not a family member")
		return
	}

	incomes := make([]models.Income, 0)
	if err := database.DB.Where("family_id = ?", familyID).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	for i := range incomes {
		incomes[i].Amount = models.Round2(incomes[i].Amount)
	}

	Success(c, IncomesResponse{Incomes: incomes})
}
