package e2e

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"github.com/aldrsze/Personal-Portfolio-Website/internal/router"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// localClient 在不起真实监听端口的情况下走完整的路由栈，并维护会话 Cookie。
type localClient struct {
	handler http.Handler
	jar     http.CookieJar
	base    *url.URL
}

func newLocalClient(t *testing.T, handler http.Handler) *localClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	base, _ := url.Parse("http://portfolio.test")
	return &localClient{handler: handler, jar: jar, base: base}
}

func (c *localClient) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	for _, cookie := range c.jar.Cookies(c.base) {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	if cookies := rr.Result().Cookies(); len(cookies) > 0 {
		c.jar.SetCookies(c.base, cookies)
	}
	return rr
}

func (c *localClient) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(t, req)
}

type e2eSuite struct {
	gdb    *gorm.DB
	client *localClient
}

func newE2ESuite(t *testing.T) (*e2eSuite, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Seed(gdb); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	handler := router.SetupRouter(gdb, "e2e-secret", t.TempDir(), "/static/uploads", writeTemplates(t))
	suite := &e2eSuite{gdb: gdb, client: newLocalClient(t, handler)}

	return suite, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func (s *e2eSuite) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return s.client.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

// writeTemplates 为测试准备最小可渲染的页面模板。
func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"index.html":     "<html><body>portfolio</body></html>",
		"login.html":     "<html><body>login {{.flashMessage}}</body></html>",
		"dashboard.html": "<html><body>dashboard {{.username}}</body></html>",
	}
	for name, content := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write template %s: %v", name, err)
		}
	}
	return filepath.Join(dir, "*.html")
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoginFlow(t *testing.T) {
	suite, cleanup := newE2ESuite(t)
	defer cleanup()

	rr := suite.login(t, "admin", "wrong")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", rr.Code)
	}

	rr = suite.login(t, "admin", "1234")
	if rr.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}

	// 登录后后台写操作不再被重定向到登录页
	rr = suite.client.postForm(t, "/admin/update-theme", url.Values{"theme_name": {"blue"}})
	if rr.Code != http.StatusFound || rr.Header().Get("Location") == "/login" {
		t.Fatalf("expected authenticated redirect back to /admin, got %d -> %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestThemeChangePersists(t *testing.T) {
	suite, cleanup := newE2ESuite(t)
	defer cleanup()

	suite.login(t, "admin", "1234")
	suite.client.postForm(t, "/admin/update-theme", url.Values{"theme_name": {"emerald"}})

	var theme db.ThemeSetting
	if err := suite.gdb.First(&theme, db.ThemeSettingID).Error; err != nil {
		t.Fatalf("failed to load theme: %v", err)
	}
	if theme.ThemeName != "emerald" || theme.AccentColor != "#10b981" {
		t.Fatalf("expected emerald theme persisted, got %+v", theme)
	}

	// 非法主题名不应修改当前设置
	suite.client.postForm(t, "/admin/update-theme", url.Values{"theme_name": {"neon-zebra"}})
	if err := suite.gdb.First(&theme, db.ThemeSettingID).Error; err != nil {
		t.Fatalf("failed to reload theme: %v", err)
	}
	if theme.ThemeName != "emerald" {
		t.Fatalf("expected theme unchanged after invalid selection, got %q", theme.ThemeName)
	}
}

func TestBatchUpdateTechWithImage(t *testing.T) {
	suite, cleanup := newE2ESuite(t)
	defer cleanup()
	suite.login(t, "admin", "1234")

	updates := `[{"id":"new","title":"Docker","description":"Containers"}]`

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("updates", updates); err != nil {
		t.Fatalf("write field failed: %v", err)
	}
	if err := writer.WriteField("deletes", "[]"); err != nil {
		t.Fatalf("write field failed: %v", err)
	}
	part, err := writer.CreateFormFile("tech_image_new", "docker.png")
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(pngBytes(t))); err != nil {
		t.Fatalf("copy png failed: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/batch-update-tech", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := suite.client.do(t, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil || !payload.Success {
		t.Fatalf("expected success response, got %s", rr.Body.String())
	}

	var item db.ContentItem
	if err := suite.gdb.Where("section = ? AND title = ?", db.SectionTechStack, "Docker").First(&item).Error; err != nil {
		t.Fatalf("expected new tech item: %v", err)
	}
	if !strings.HasPrefix(item.ImageURL, "/static/uploads/tech_") {
		t.Fatalf("expected stored image url, got %q", item.ImageURL)
	}
}

func TestChangePasswordInvalidatesOldLogin(t *testing.T) {
	suite, cleanup := newE2ESuite(t)
	defer cleanup()
	suite.login(t, "admin", "1234")

	rr := suite.client.postForm(t, "/admin/change-password", url.Values{
		"new_password":     {"fresh-secret"},
		"confirm_password": {"fresh-secret"},
	})
	if rr.Code != http.StatusFound {
		t.Fatalf("expected redirect after password change, got %d", rr.Code)
	}

	logout := httptest.NewRequest(http.MethodGet, "/logout", nil)
	suite.client.do(t, logout)

	rr = suite.login(t, "admin", "1234")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected old password to fail, got %d", rr.Code)
	}
	rr = suite.login(t, "admin", "fresh-secret")
	if rr.Code != http.StatusFound {
		t.Fatalf("expected new password to log in, got %d", rr.Code)
	}
}
