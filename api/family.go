package api

import (
	"errors"

	"familybudget/config"
	"familybudget/database"
	"familybudget/middleware"
	"familybudget/models"
	"familybudget/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FamilyHandler 家庭与成员管理处理器
type FamilyHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewFamilyHandler 创建家庭处理器
func NewFamilyHandler(cfg *config.Config) *FamilyHandler {
	return &FamilyHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// CreateFamilyRequest 创建家庭请求
type CreateFamilyRequest struct {
	Name          string  `json:"name" binding:"required" example:"Home"`
	Description   string  `json:"description" example:"Our family budget"`
	Currency      string  `json:"currency" example:"USD"`
	MonthlyBudget float64 `json:"monthlyBudget" binding:"omitempty,gte=0" example:"2000"`
}

// AddMemberRequest 添加成员请求
// 受邀邮箱不存在时创建新账号，此时必须提供密码
type AddMemberRequest struct {
	FamilyID     uint    `json:"familyId" binding:"required" example:"1"`
	Email        string  `json:"email" binding:"required,email" example:"b@x.com"`
	Name         string  `json:"name" example:"Bob"`
	Password     string  `json:"password" binding:"omitempty,min=6" example:"secret1"`
	Role         string  `json:"role" binding:"omitempty,oneof=admin member" example:"member"`
	MonthlyLimit float64 `json:"monthlyLimit" binding:"omitempty,gte=0" example:"300"`
}

// FamilyResponse 家庭响应包装
type FamilyResponse struct {
	Family models.Family `json:"family"`
}

// FamiliesResponse 家庭列表响应包装
type FamiliesResponse struct {
	Families []models.Family `json:"families"`
}

// MemberResponse 成员响应包装
type MemberResponse struct {
	Member models.FamilyMember `json:"member"`
}

// getMembership 查询用户在指定家庭的成员记录
func getMembership(userID, familyID uint) (*models.FamilyMember, error) {
	var m models.FamilyMember
	if err := database.DB.Where("user_id = ? AND family_id = ?", userID, familyID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Create 创建家庭
// @Summary 创建家庭
// @Description 创建家庭并将创建者设为 admin 成员。每个用户至多属于一个家庭。
// @Tags families
// @Accept json
// @Produce json
// @Success 200 {object} FamilyResponse "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误或已有家庭"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /families [post]
func (h *FamilyHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ValidationMessage(err))
		return
	}

	// 单家庭约束：已有任何成员记录则拒绝
	var existing models.FamilyMember
	if err := database.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		BadRequest(c, "You already belong to a family and cannot create another one")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	family := models.Family{
		Name:          req.Name,
		Description:   req.Description,
		Currency:      currency,
		MonthlyBudget: models.Round2(req.MonthlyBudget),
	}
	member := models.FamilyMember{
		UserID:       userID,
		Role:         models.RoleAdmin,
		MonthlyLimit: 0,
	}

	// 家庭和创建者成员记录在同一事务内写入
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&family).Error; err != nil {
			return err
		}
		member.FamilyID = family.ID
		return tx.Create(&member).Error
	})
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	family.Members = []models.FamilyMember{member}
	Success(c, FamilyResponse{Family: family})
}

// List 获取当前用户的家庭列表
// @Summary 获取家庭列表
// @Description 返回当前用户所属的家庭，含成员及成员用户信息
// @Tags families
// @Produce json
// @Success 200 {object} FamiliesResponse "获取成功"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /families [get]
func (h *FamilyHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	families := make([]models.Family, 0)
	err := database.DB.
		Joins("JOIN family_members fm ON fm.family_id = families.id AND fm.user_id = ?", userID).
		Preload("Members").
		Preload("Members.User").
		Find(&families).Error
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	Success(c, FamiliesResponse{Families: families})
}

// AddMember 添加家庭成员
// @Summary 添加家庭成员
// @Description 仅 admin 可邀请。受邀邮箱不存在时用提供的密码创建账号；已在本家庭或其他家庭的用户会被拒绝。
// @Tags families
// @Accept json
// @Produce json
// @Success 200 {object} MemberResponse "添加成功"
// @Failure 400 {object} ErrorResponse "参数错误、重复成员或已属于其他家庭"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 403 {object} ErrorResponse "非管理员"
// @Router /families/add-member [post]
func (h *FamilyHandler) AddMember(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ValidationMessage(err))
		return
	}

	// 只有该家庭的管理员可以邀请
	caller, err := getMembership(userID, req.FamilyID)
	if err != nil || !caller.IsAdmin() {
		Forbidden(c, "You must be an admin to add members")
		return
	}

	// 按邮箱解析受邀用户，不存在则新建账号
	var invited models.User
	findErr := database.DB.Where("email = ?", req.Email).First(&invited).Error
	switch {
	case findErr == nil:
		var existing models.FamilyMember
		if err := database.DB.Where("user_id = ?", invited.ID).First(&existing).Error; err == nil {
			if existing.FamilyID == req.FamilyID {
				BadRequest(c, "User is already a member of this family")
			} else {
				BadRequest(c, "This user already belongs to a family")
			}
			return
		}
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		if req.Password == "" {
			BadRequest(c, "Password is required for new members")
			return
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			InternalError(c, "Invalid request")
			return
		}
		invited = models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashedPassword),
		}
		if err := database.DB.Create(&invited).Error; err != nil {
			BadRequest(c, SafeErrorMessage(err, "Invalid request"))
			return
		}
	default:
		BadRequest(c, SafeErrorMessage(findErr, "Invalid request"))
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}

	member := models.FamilyMember{
		UserID:       invited.ID,
		FamilyID:     req.FamilyID,
		Role:         role,
		MonthlyLimit: models.Round2(req.MonthlyLimit),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	// 邀请邮件失败不影响成员添加
	if h.emailService.Enabled() {
		var family models.Family
		if err := database.DB.First(&family, req.FamilyID).Error; err == nil {
			go h.emailService.SendInviteEmail(invited.Email, invited.Name, family.Name)
		}
	}

	Success(c, MemberResponse{Member: member})
}
