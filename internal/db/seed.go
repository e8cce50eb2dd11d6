package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 默认管理员账号。部署后应立即在后台修改密码。
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "1234"
)

type seedEntry struct {
	Title       string
	Description string
}

// 各分区的初始内容，仅在对应分区完全为空时写入。
var sectionSeeds = map[string][]seedEntry{
	SectionSkills: {
		{"Communication Skills", "Clear and effective verbal and written communication."},
		{"Responsible", "Dependable and committed to completing tasks on time."},
		{"Adaptability", "Quick to adjust to new tools and requirements."},
		{"Problem-Solving", "Analytical approach to resolving technical issues."},
		{"Teamwork", "Collaborates well with peers and cross-functional teams."},
		{"Time Management", "Organized and efficient in prioritizing tasks."},
		{"Fast Learner", "Eager to learn and apply new technologies quickly."},
	},
	SectionTechStack: {
		{"VS Code", "Primary code editor"},
		{"Go", "Backend programming language"},
		{"Gin", "Lightweight web framework"},
		{"SQLite", "Embedded database"},
	},
	SectionProjects: {
		{
			"SmartStock Inventory Management System",
			"Capstone Project (Oct–Dec 2025). Built a professional inventory system for small businesses with " +
				"sales tracking, QR code integration, real-time analytics, automatic profit calculation, and " +
				"low-stock alerts. Led system programming, database architecture, and technical documentation.",
		},
	},
	SectionAwards: {
		{"With Honors, STEM-11", "2024 — Mary The Queen College of Quezon City"},
		{"With High Honors, STEM-12", "2025 — Mary The Queen College of Quezon City"},
	},
	SectionEducation: {
		{"Quezon City University — BS in Information Technology", "Tertiary • 2025 - Present"},
		{"Batasan Hills National Highschool / Mary The Queen College of Quezon City", "Secondary • 2019 - 2025"},
		{"San Diego Elementary School", "Primary • 2012 - 2019"},
	},
}

func defaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		ID:    PersonalInfoID,
		Name:  "Aldrin Miguel A. Jariel",
		Intro: "Hi! I'm Aldrin Miguel A. Jariel!",
		CareerObjective: "Motivated and hardworking individual seeking an opportunity to gain practical experience " +
			"and develop new skills. I am eager to learn, able to follow instructions, and committed to performing " +
			"tasks responsibly and efficiently. My goal is to improve my communication, teamwork, and problem-solving " +
			"skills while contributing positively to the company and growing as a reliable and productive member of the team.",
		Email:        "aldrinjariel0@gmail.com",
		Phone:        "09955954094",
		Address:      "12-D Legislative St., Batasan Hills, Quezon City, 1126",
		Age:          "18",
		Birthday:     "October 15, 2007",
		Gender:       "Male",
		CivilStatus:  "Single",
		Nationality:  "Filipino",
		Religion:     "Roman Catholic",
		Language:     "English, Filipino",
		Height:       "167 cm",
		Weight:       "56 kg",
		AboutWebsite: "This portfolio highlights my background, achievements, and projects.",
	}
}

// Seed 在首次启动时写入默认数据，之后的任何重复调用都是空操作。
// 每个分区的插入整体成功或整体失败，不会留下写了一半的分区。
func Seed(gdb *gorm.DB) error {
	if gdb == nil {
		return errors.New("database not initialized")
	}

	for _, section := range Sections {
		if err := seedSection(gdb, section); err != nil {
			return fmt.Errorf("seed section %s: %w", section, err)
		}
	}

	if err := seedPersonalInfo(gdb); err != nil {
		return fmt.Errorf("seed personal info: %w", err)
	}

	if err := seedStats(gdb); err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	if err := seedTheme(gdb); err != nil {
		return fmt.Errorf("seed theme: %w", err)
	}

	if err := EnsureAdmin(gdb, DefaultAdminUsername, DefaultAdminPassword); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	return nil
}

func seedSection(gdb *gorm.DB, section string) error {
	entries := sectionSeeds[section]
	if len(entries) == 0 {
		return nil
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ContentItem{}).Where("section = ?", section).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for index, entry := range entries {
			item := ContentItem{
				Section:     section,
				Title:       entry.Title,
				Description: entry.Description,
				OrderNum:    index + 1,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedPersonalInfo(gdb *gorm.DB) error {
	var existing PersonalInfo
	err := gdb.First(&existing, PersonalInfoID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	info := defaultPersonalInfo()
	return gdb.Create(&info).Error
}

func seedStats(gdb *gorm.DB) error {
	for _, name := range StatNames {
		stat := Stat{Name: name, Count: 0}
		if err := gdb.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&stat).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTheme(gdb *gorm.DB) error {
	var existing ThemeSetting
	err := gdb.First(&existing, ThemeSettingID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	theme := ThemeSetting{
		ID:              ThemeSettingID,
		ThemeName:       "rose",
		BgGradientStart: "#ffe4e6",
		BgGradientEnd:   "#fecaca",
		AccentColor:     "#f43f5e",
		AccentHover:     "#e11d48",
	}
	return gdb.Create(&theme).Error
}

// RepairPersonalInfo 将仍为空的个人信息字段回填为初始默认值。
// 管理员已经填写过的非空字段保持不动。这是一个显式触发的修复操作，
// 不在启动路径上自动执行，调用方负责记录日志。
func RepairPersonalInfo(gdb *gorm.DB) (int, error) {
	if gdb == nil {
		return 0, errors.New("database not initialized")
	}

	var info PersonalInfo
	if err := gdb.First(&info, PersonalInfoID).Error; err != nil {
		return 0, fmt.Errorf("load personal info: %w", err)
	}

	defaults := defaultPersonalInfo()
	updates := map[string]interface{}{}

	fields := []struct {
		column   string
		current  string
		fallback string
	}{
		{"name", info.Name, defaults.Name},
		{"intro", info.Intro, defaults.Intro},
		{"career_objective", info.CareerObjective, defaults.CareerObjective},
		{"email", info.Email, defaults.Email},
		{"phone", info.Phone, defaults.Phone},
		{"address", info.Address, defaults.Address},
		{"age", info.Age, defaults.Age},
		{"birthday", info.Birthday, defaults.Birthday},
		{"gender", info.Gender, defaults.Gender},
		{"civil_status", info.CivilStatus, defaults.CivilStatus},
		{"nationality", info.Nationality, defaults.Nationality},
		{"religion", info.Religion, defaults.Religion},
		{"language", info.Language, defaults.Language},
		{"height", info.Height, defaults.Height},
		{"weight", info.Weight, defaults.Weight},
		{"about_website", info.AboutWebsite, defaults.AboutWebsite},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.current) == "" && field.fallback != "" {
			updates[field.column] = field.fallback
		}
	}

	if len(updates) == 0 {
		return 0, nil
	}

	if err := gdb.Model(&PersonalInfo{}).Where("id = ?", PersonalInfoID).Updates(updates).Error; err != nil {
		return 0, fmt.Errorf("repair personal info: %w", err)
	}

	return len(updates), nil
}
