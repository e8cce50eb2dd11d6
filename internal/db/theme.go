package db

// ThemeSettingID 是主题设置单例行的固定主键。
const ThemeSettingID = 1

// ThemeSetting 保存当前生效的主题，四个颜色字段始终与预设目录保持一致。
type ThemeSetting struct {
	ID              uint   `gorm:"primaryKey"`
	ThemeName       string `gorm:"size:32;default:rose"`
	BgGradientStart string `gorm:"size:16;default:#ffe4e6"`
	BgGradientEnd   string `gorm:"size:16;default:#fecaca"`
	AccentColor     string `gorm:"size:16;default:#f43f5e"`
	AccentHover     string `gorm:"size:16;default:#e11d48"`
}

// TableName 指定自定义表名。
func (ThemeSetting) TableName() string {
	return "theme_settings"
}
