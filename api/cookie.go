package api

import (
	"net/http"

	"familybudget/config"
	"familybudget/middleware"

	"github.com/gin-gonic/gin"
)

// getCookieOptions 根据运行模式返回会话 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输）
// SameSite=Lax: 防止跨站 POST 请求携带 Cookie，同时允许同站导航
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}

// setSessionCookie 将会话令牌写入 http-only cookie
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", secure, true)
}

// clearSessionCookie 清除会话 cookie
func clearSessionCookie(c *gin.Context) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", secure, true)
}
