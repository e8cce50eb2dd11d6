package handler

import (
	"errors"
	"strings"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/service"
	"github.com/gin-gonic/gin"
)

// UpdateTheme 将指定预设应用为当前主题。
// 未知的主题名不会修改任何设置。
func (a *API) UpdateTheme(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("theme_name"))

	setting, err := a.themes.Apply(name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTheme) {
			flashAndRedirect(c, "error", "Invalid theme selection!")
			return
		}
		flashAndRedirect(c, "error", "Failed to change theme.")
		return
	}

	flashAndRedirect(c, "success", "Theme changed to "+sectionLabel(setting.ThemeName)+"!")
}
