package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"gorm.io/gorm"
)

// ErrUnknownTheme 在主题名不在预设目录内时返回
var ErrUnknownTheme = errors.New("unknown theme")

// ThemePreset 是一组固定的主题配色。
type ThemePreset struct {
	BgGradientStart string
	BgGradientEnd   string
	AccentColor     string
	AccentHover     string
}

// DefaultThemeName 是初始化时使用的预设。
const DefaultThemeName = "rose"

// themeCatalog 是随系统发布的静态预设目录，所有部署完全一致。
var themeCatalog = map[string]ThemePreset{
	"rose":     {"#ffe4e6", "#fecaca", "#f43f5e", "#e11d48"},
	"blue":     {"#dbeafe", "#bfdbfe", "#3b82f6", "#2563eb"},
	"emerald":  {"#d1fae5", "#a7f3d0", "#10b981", "#059669"},
	"orange":   {"#fed7aa", "#fdba74", "#f97316", "#ea580c"},
	"cyan":     {"#cffafe", "#a5f3fc", "#06b6d4", "#0891b2"},
	"purple":   {"#ddd6fe", "#c4b5fd", "#8b5cf6", "#7c3aed"},
	"sunset":   {"#fef3c7", "#fca5a5", "#dc2626", "#b91c1c"},
	"ocean":    {"#e0f2fe", "#7dd3fc", "#0284c7", "#0369a1"},
	"mint":     {"#ecfdf5", "#a7f3d0", "#059669", "#047857"},
	"lavender": {"#f5f3ff", "#ddd6fe", "#7c3aed", "#6d28d9"},
	"peach":    {"#fff7ed", "#fed7aa", "#ea580c", "#c2410c"},
	"midnight": {"#e0e7ff", "#a5b4fc", "#4f46e5", "#4338ca"},
	"ruby":     {"#ffe4e6", "#fda4af", "#be123c", "#9f1239"},
	"forest":   {"#f0fdf4", "#86efac", "#15803d", "#166534"},
	"amber":    {"#fffbeb", "#fde68a", "#d97706", "#b45309"},
	"sky":      {"#f0f9ff", "#bae6fd", "#0369a1", "#075985"},
	"fuchsia":  {"#fdf4ff", "#f0abfc", "#c026d3", "#a21caf"},
	"teal":     {"#f0fdfa", "#5eead4", "#0f766e", "#115e59"},
	"crimson":  {"#fef2f2", "#fecaca", "#991b1b", "#7f1d1d"},
	"slate":    {"#f8fafc", "#cbd5e1", "#334155", "#1e293b"},
	"lime":     {"#f7fee7", "#bef264", "#65a30d", "#4d7c0f"},
	"indigo":   {"#eef2ff", "#a5b4fc", "#4338ca", "#3730a3"},
}

// ThemeService 持有预设目录并负责切换当前主题。
type ThemeService struct {
	db *gorm.DB
}

// NewThemeService 构造 ThemeService。
func NewThemeService(gdb *gorm.DB) *ThemeService {
	return &ThemeService{db: gdb}
}

// ThemeNames 返回目录中全部预设名，按字典序排列，供后台选择器使用。
func ThemeNames() []string {
	names := make([]string, 0, len(themeCatalog))
	for name := range themeCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme 返回指定预设的配色，不存在时第二个返回值为 false。
func LookupTheme(name string) (ThemePreset, bool) {
	preset, ok := themeCatalog[name]
	return preset, ok
}

// Current 返回当前生效的主题设置，行缺失时回退到默认预设。
func (s *ThemeService) Current() (db.ThemeSetting, error) {
	var setting db.ThemeSetting
	if err := s.db.First(&setting, db.ThemeSettingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			preset := themeCatalog[DefaultThemeName]
			return db.ThemeSetting{
				ID:              db.ThemeSettingID,
				ThemeName:       DefaultThemeName,
				BgGradientStart: preset.BgGradientStart,
				BgGradientEnd:   preset.BgGradientEnd,
				AccentColor:     preset.AccentColor,
				AccentHover:     preset.AccentHover,
			}, nil
		}
		return setting, fmt.Errorf("load theme settings: %w", err)
	}
	return setting, nil
}

// Apply 将命名预设整体写入主题单例行并返回新设置。
// 未知主题名不做任何修改，直接返回 ErrUnknownTheme。
func (s *ThemeService) Apply(name string) (db.ThemeSetting, error) {
	preset, ok := themeCatalog[name]
	if !ok {
		return db.ThemeSetting{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}

	setting := db.ThemeSetting{
		ID:              db.ThemeSettingID,
		ThemeName:       name,
		BgGradientStart: preset.BgGradientStart,
		BgGradientEnd:   preset.BgGradientEnd,
		AccentColor:     preset.AccentColor,
		AccentHover:     preset.AccentHover,
	}

	result := s.db.Model(&db.ThemeSetting{}).
		Where("id = ?", db.ThemeSettingID).
		Updates(map[string]interface{}{
			"theme_name":        setting.ThemeName,
			"bg_gradient_start": setting.BgGradientStart,
			"bg_gradient_end":   setting.BgGradientEnd,
			"accent_color":      setting.AccentColor,
			"accent_hover":      setting.AccentHover,
		})
	if result.Error != nil {
		return db.ThemeSetting{}, fmt.Errorf("apply theme %s: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		// 单例行缺失时补建，保持"始终存在一行"的不变式
		if err := s.db.Create(&setting).Error; err != nil {
			return db.ThemeSetting{}, fmt.Errorf("apply theme %s: %w", name, err)
		}
	}

	return setting, nil
}
