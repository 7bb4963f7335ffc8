package api

import (
	"time"

	"familybudget/config"
	"familybudget/database"
	"familybudget/middleware"
	"familybudget/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" binding:"required,email" example:"a@x.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"a@x.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// UserInfo 返回给客户端的用户信息（不含密码哈希）
type UserInfo struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UserResponse 用户响应包装
type UserResponse struct {
	User UserInfo `json:"user"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号，邮箱全局唯一
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} UserResponse "注册成功"
// @Failure 400 {object} ErrorResponse "参数错误或邮箱已被使用"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ValidationMessage(err))
		return
	}

	// 检查邮箱是否已被使用
	var existingUser models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		BadRequest(c, "Email already in use")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Invalid request")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request"))
		return
	}

	Success(c, UserResponse{User: UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: &user.CreatedAt,
	}})
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验邮箱密码，签发会话令牌并写入 http-only cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} UserResponse "登录成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "邮箱或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ValidationMessage(err))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Unauthorized(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Invalid request")
		return
	}

	setSessionCookie(c, token, int(h.cfg.JWT.ExpireTime.Seconds()))

	Success(c, UserResponse{User: UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}})
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Description 通过会话 cookie 解析当前登录用户
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse "获取成功"
// @Failure 401 {object} ErrorResponse "未登录或会话失效"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		Unauthorized(c, "Unauthorized")
		return
	}

	Success(c, UserResponse{User: UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}})
}

// Logout 退出登录
// @Summary 退出登录
// @Description 清除会话 cookie，令牌本身不吊销
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool "退出成功"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	Success(c, gin.H{"ok": true})
}
