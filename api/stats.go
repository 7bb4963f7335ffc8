package api

import (
	"time"

	"familybudget/database"
	"familybudget/middleware"
	"familybudget/models"

	"github.com/gin-gonic/gin"
)

// StatsHandler 家庭账目统计处理器
type StatsHandler struct{}

// NewStatsHandler 创建统计处理器
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// CategoryStat 按类别汇总
type CategoryStat struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MemberStat 按成员汇总，成员对应的用户被删除时 name 为 null
type MemberStat struct {
	MemberID uint    `json:"memberId"`
	Name     *string `json:"name"`
	Amount   float64 `json:"amount"`
}

// MonthlyStat 单个月份的支出汇总，label 为月份缩写（如 "Jan"）
type MonthlyStat struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// StatsResponse 家庭统计响应
type StatsResponse struct {
	TotalExpenses float64        `json:"totalExpenses"`
	TotalIncomes  float64        `json:"totalIncomes"`
	ByCategory    []CategoryStat `json:"byCategory"`
	ByMember      []MemberStat   `json:"byMember"`
	Monthly       []MonthlyStat  `json:"monthly"`
}

// GetStats 获取家庭账目统计
// @Summary 获取家庭账目统计
// @Description 汇总指定家庭的全部账目：支出/收入总额、按类别、按成员、以及截至当月的 12 个月支出序列。所有金额保留两位小数。
// @Tags stats
// @Produce json
// @Param familyId query int true "家庭ID"
// @Success 200 {object} StatsResponse "获取成功"
// @Failure 400 {object} ErrorResponse "缺少 familyId"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非家庭成员"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	familyID, ok := parseFamilyID(c)
	if !ok {
		return
	}

	// 非成员直接拒绝，不做任何计算
	if _, err := getMembership(userID, familyID); err != nil {
		Forbidden(c, "Forbidden")
		return
	}

	var totalExpenses float64
	if err := database.DB.Model(&models.Expense{}).
		Where("family_id = ?", familyID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpenses).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	var totalIncomes float64
	if err := database.DB.Model(&models.Income{}).
		Where("family_id = ?", familyID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalIncomes).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	// 按类别分组汇总，顺序为数据库分组顺序
	type groupRow struct {
		Category       string  `gorm:"column:category"`
		FamilyMemberID uint    `gorm:"column:family_member_id"`
		Total          float64 `gorm:"column:total"`
	}

	var categoryRows []groupRow
	if err := database.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) as total").
		Where("family_id = ?", familyID).
		Group("category").
		Scan(&categoryRows).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}
	byCategory := make([]CategoryStat, 0, len(categoryRows))
	for _, row := range categoryRows {
		byCategory = append(byCategory, CategoryStat{
			Category: row.Category,
			Amount:   models.Round2(row.Total),
		})
	}

	// 按成员分组汇总，成员名通过成员记录回查用户获得
	// 每组各一次成员查询和用户查询，家庭规模下可接受
	var memberRows []groupRow
	if err := database.DB.Model(&models.Expense{}).
		Select("family_member_id, SUM(amount) as total").
		Where("family_id = ?", familyID).
		Group("family_member_id").
		Scan(&memberRows).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}
	byMember := make([]MemberStat, 0, len(memberRows))
	for _, row := range memberRows {
		stat := MemberStat{
			MemberID: row.FamilyMemberID,
			Amount:   models.Round2(row.Total),
		}
		var member models.FamilyMember
		if err := database.DB.First(&member, row.FamilyMemberID).Error; err == nil {
			var user models.User
			if err := database.DB.First(&user, member.UserID).Error; err == nil {
				name := user.Name
				stat.Name = &name
			}
		}
		byMember = append(byMember, stat)
	}

	// 12 个月序列：一次取出全部支出再在内存中按 (月, 年) 分桶，避免逐月查询
	var expenses []models.Expense
	if err := database.DB.
		Where("family_id = ?", familyID).
		Order("date ASC").
		Find(&expenses).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}
	monthly := buildMonthlySeries(expenses, time.Now())

	Success(c, StatsResponse{
		TotalExpenses: models.Round2(totalExpenses),
		TotalIncomes:  models.Round2(totalIncomes),
		ByCategory:    byCategory,
		ByMember:      byMember,
		Monthly:       monthly,
	})
}

// buildMonthlySeries 构建以 now 所在月份结尾的 12 个自然月支出序列，从旧到新
// 没有支出的月份金额为 0。12 个月窗口内月份缩写不会重复，标签不带年份。
func buildMonthlySeries(expenses []models.Expense, now time.Time) []MonthlyStat {
	monthly := make([]MonthlyStat, 0, 12)
	for i := 11; i >= 0; i-- {
		bucket := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.Local)
		var sum float64
		for _, e := range expenses {
			if e.Date.Month() == bucket.Month() && e.Date.Year() == bucket.Year() {
				sum += e.Amount
			}
		}
		monthly = append(monthly, MonthlyStat{
			Label:  bucket.Format("Jan"),
			Amount: models.Round2(sum),
		})
	}
	return monthly
}
