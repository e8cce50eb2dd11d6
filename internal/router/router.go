package router

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxRequestBodyBytes 限制整个请求体的大小，超限的上传在写盘前即被拒绝。
const maxRequestBodyBytes = 16 << 20

// SetupRouter 配置 Gin 引擎和路由。
// templateGlob 为空或没有匹配文件时跳过模板加载，便于测试环境运行。
func SetupRouter(gdb *gorm.DB, sessionSecret, uploadDir, uploadURLPath, templateGlob string) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = maxRequestBodyBytes

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * 60 * 60,
	})
	r.Use(sessions.Sessions("portfolio_session", store))

	// 请求体大小上限。POST 表单在进入处理器前统一解析：
	// 超限请求以 413 拒绝，解析失败以 400 拒绝，
	// 避免解析失败被懒加载表单当成空表单继续执行。
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyBytes)
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		var err error
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			err = c.Request.ParseMultipartForm(maxRequestBodyBytes)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed form payload"})
			return
		}
		c.Next()
	})

	if templateGlob != "" {
		if matches, err := filepath.Glob(templateGlob); err == nil && len(matches) > 0 {
			r.LoadHTMLGlob(templateGlob)
		}
	}

	// 静态文件服务
	if uploadDir != "" && uploadURLPath != "" {
		r.Static(uploadURLPath, uploadDir)
	}

	api := handler.NewAPI(gdb, uploadDir, uploadURLPath)

	// 访客路由
	r.GET("/", api.Home)
	r.POST("/like", api.Like)
	r.POST("/profile-click", api.ProfileClick)
	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)

	// 需要认证的后台路由
	admin := r.Group("/admin")
	admin.Use(handler.AuthRequired())
	{
		admin.GET("", api.ShowDashboard)
		admin.POST("/update-personal-info", api.UpdatePersonalInfo)
		admin.POST("/update-content/:section", api.UpdateContent)
		admin.POST("/delete-content/:id", api.DeleteContent)
		admin.POST("/batch-update-skills", api.BatchUpdateSkills)
		admin.POST("/batch-update-tech", api.BatchUpdateTech)
		admin.POST("/batch-update-projects", api.BatchUpdateProjects)
		admin.POST("/change-password", api.ChangePassword)
		admin.POST("/change-username", api.ChangeUsername)
		admin.POST("/update-theme", api.UpdateTheme)
	}

	return r
}
