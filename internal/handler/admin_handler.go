package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionLoggedInKey = "logged_in"
	sessionUsernameKey = "username"
)

// ShowLoginPage 渲染登录页面，沿用当前主题配色。
func (a *API) ShowLoginPage(c *gin.Context) {
	theme, err := a.themes.Current()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load theme settings")
		return
	}

	message, kind := takeFlash(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title":        "Admin Login",
		"theme":        theme,
		"flashMessage": message,
		"flashKind":    kind,
	})
}

// Login 处理管理员登录请求。
// 登录失败时永远返回同一条提示，不区分用户名错还是密码错。
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if err := a.admins.Verify(username, password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			theme, _ := a.themes.Current()
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"title":        "Admin Login",
				"theme":        theme,
				"flashMessage": "Invalid credentials",
				"flashKind":    "error",
			})
			return
		}
		c.String(http.StatusInternalServerError, "login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionLoggedInKey, true)
	session.Set(sessionUsernameKey, username)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "failed to save session")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Logout 清空会话并回到登录页。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}

// ShowDashboard 渲染后台主面板，附带完整的站点快照。
func (a *API) ShowDashboard(c *gin.Context) {
	data, err := a.portfolio.Snapshot()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load portfolio data")
		return
	}

	session := sessions.Default(c)
	message, kind := takeFlash(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":        "Admin Dashboard",
		"username":     session.Get(sessionUsernameKey),
		"data":         data,
		"themeNames":   service.ThemeNames(),
		"flashMessage": message,
		"flashKind":    kind,
	})
}

// ChangePassword 修改当前登录管理员的密码，两次输入必须一致。
func (a *API) ChangePassword(c *gin.Context) {
	newPassword := c.PostForm("new_password")
	confirmPassword := c.PostForm("confirm_password")

	if newPassword != confirmPassword {
		flashAndRedirect(c, "error", "Passwords do not match!")
		return
	}

	session := sessions.Default(c)
	username, _ := session.Get(sessionUsernameKey).(string)

	if err := a.admins.SetPassword(username, newPassword); err != nil {
		if errors.Is(err, service.ErrPasswordEmpty) {
			flashAndRedirect(c, "error", "Password must not be empty!")
			return
		}
		flashAndRedirect(c, "error", "Failed to change password.")
		return
	}

	flashAndRedirect(c, "success", "Password changed successfully!")
}

// ChangeUsername 修改当前登录管理员的用户名。
func (a *API) ChangeUsername(c *gin.Context) {
	newUsername := strings.TrimSpace(c.PostForm("new_username"))

	session := sessions.Default(c)
	username, _ := session.Get(sessionUsernameKey).(string)

	if err := a.admins.Rename(username, newUsername); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			flashAndRedirect(c, "error", "Username already exists!")
		case errors.Is(err, service.ErrUsernameEmpty):
			flashAndRedirect(c, "error", "Username must not be empty!")
		default:
			flashAndRedirect(c, "error", "Failed to change username.")
		}
		return
	}

	session.Set(sessionUsernameKey, newUsername)
	session.Save()
	flashAndRedirect(c, "success", "Username changed successfully!")
}

// AuthRequired 拦截未登录的后台请求并跳转到登录页。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, _ := session.Get(sessionLoggedInKey).(bool)
		if !loggedIn {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
