package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	flashMessageKey = "flash_message"
	flashKindKey    = "flash_kind"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// setFlash 将一条提示消息写入会话，随下一次页面渲染展示。
func setFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.Set(flashMessageKey, message)
	session.Set(flashKindKey, kind)
	session.Save()
}

// takeFlash 读取并清除会话中的提示消息。
func takeFlash(c *gin.Context) (message, kind string) {
	session := sessions.Default(c)
	if raw, ok := session.Get(flashMessageKey).(string); ok {
		message = raw
	}
	if raw, ok := session.Get(flashKindKey).(string); ok {
		kind = raw
	}
	if message != "" {
		session.Delete(flashMessageKey)
		session.Delete(flashKindKey)
		session.Save()
	}
	return message, kind
}

// flashAndRedirect 设置提示后跳转回后台首页。
func flashAndRedirect(c *gin.Context, kind, message string) {
	setFlash(c, kind, message)
	c.Redirect(http.StatusFound, "/admin")
}
