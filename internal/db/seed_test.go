package db

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func countSection(t *testing.T, gdb *gorm.DB, section string) int64 {
	t.Helper()
	var count int64
	if err := gdb.Model(&ContentItem{}).Where("section = ?", section).Count(&count).Error; err != nil {
		t.Fatalf("failed to count section %s: %v", section, err)
	}
	return count
}

func TestMigrateIsIdempotent(t *testing.T) {
	gdb, cleanup := setupSeedTestDB(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		if err := Migrate(gdb); err != nil {
			t.Fatalf("migrate run %d failed: %v", i+1, err)
		}
	}
}

func TestSeedPopulatesEmptyStore(t *testing.T) {
	gdb, cleanup := setupSeedTestDB(t)
	defer cleanup()

	if err := Seed(gdb); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	expected := map[string]int64{
		SectionSkills:    7,
		SectionTechStack: 4,
		SectionProjects:  1,
		SectionAwards:    2,
		SectionEducation: 3,
	}
	for section, want := range expected {
		if got := countSection(t, gdb, section); got != want {
			t.Fatalf("expected %d items in %s, got %d", want, section, got)
		}
	}

	var info PersonalInfo
	if err := gdb.First(&info, PersonalInfoID).Error; err != nil {
		t.Fatalf("expected personal info row: %v", err)
	}
	if info.Name == "" || info.Email == "" {
		t.Fatalf("expected seeded personal info fields, got %+v", info)
	}

	for _, name := range StatNames {
		var stat Stat
		if err := gdb.First(&stat, "name = ?", name).Error; err != nil {
			t.Fatalf("expected stat %s: %v", name, err)
		}
		if stat.Count != 0 {
			t.Fatalf("expected stat %s to start at 0, got %d", name, stat.Count)
		}
	}

	var theme ThemeSetting
	if err := gdb.First(&theme, ThemeSettingID).Error; err != nil {
		t.Fatalf("expected theme settings row: %v", err)
	}
	if theme.ThemeName != "rose" || theme.AccentColor != "#f43f5e" {
		t.Fatalf("expected default rose theme, got %+v", theme)
	}

	var admin AdminUser
	if err := gdb.First(&admin, "username = ?", DefaultAdminUsername).Error; err != nil {
		t.Fatalf("expected default admin account: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(DefaultAdminPassword)); err != nil {
		t.Fatalf("default admin password hash does not match: %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb, cleanup := setupSeedTestDB(t)
	defer cleanup()

	if err := Seed(gdb); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	// 管理员修改过的内容不能被后续的播种覆盖
	if err := gdb.Model(&PersonalInfo{}).Where("id = ?", PersonalInfoID).
		Update("name", "Edited Name").Error; err != nil {
		t.Fatalf("failed to edit personal info: %v", err)
	}
	if err := gdb.Model(&Stat{}).Where("name = ?", StatLikes).
		Update("count", 42).Error; err != nil {
		t.Fatalf("failed to bump stat: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := Seed(gdb); err != nil {
			t.Fatalf("seed run %d failed: %v", i+2, err)
		}
	}

	if got := countSection(t, gdb, SectionSkills); got != 7 {
		t.Fatalf("expected skills to stay at 7, got %d", got)
	}

	var info PersonalInfo
	if err := gdb.First(&info, PersonalInfoID).Error; err != nil {
		t.Fatalf("failed to load personal info: %v", err)
	}
	if info.Name != "Edited Name" {
		t.Fatalf("expected edited name to survive reseeding, got %q", info.Name)
	}

	var stat Stat
	if err := gdb.First(&stat, "name = ?", StatLikes).Error; err != nil {
		t.Fatalf("failed to load stat: %v", err)
	}
	if stat.Count != 42 {
		t.Fatalf("expected likes count to survive reseeding, got %d", stat.Count)
	}

	var adminCount int64
	if err := gdb.Model(&AdminUser{}).Count(&adminCount).Error; err != nil {
		t.Fatalf("failed to count admins: %v", err)
	}
	if adminCount != 1 {
		t.Fatalf("expected exactly one admin account, got %d", adminCount)
	}
}

func TestRepairPersonalInfoFillsOnlyEmptyFields(t *testing.T) {
	gdb, cleanup := setupSeedTestDB(t)
	defer cleanup()

	if err := Seed(gdb); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// 模拟一个带空字段的历史库：phone 从未填写，name 被管理员改过
	if err := gdb.Model(&PersonalInfo{}).Where("id = ?", PersonalInfoID).
		Updates(map[string]interface{}{"phone": "", "address": "  ", "name": "Custom Name"}).Error; err != nil {
		t.Fatalf("failed to blank fields: %v", err)
	}

	filled, err := RepairPersonalInfo(gdb)
	if err != nil {
		t.Fatalf("repair failed: %v", err)
	}
	if filled != 2 {
		t.Fatalf("expected 2 fields filled, got %d", filled)
	}

	var info PersonalInfo
	if err := gdb.First(&info, PersonalInfoID).Error; err != nil {
		t.Fatalf("failed to load personal info: %v", err)
	}
	if info.Phone == "" || info.Address == "" {
		t.Fatalf("expected empty fields to be backfilled, got phone=%q address=%q", info.Phone, info.Address)
	}
	if info.Name != "Custom Name" {
		t.Fatalf("expected admin-set name to be untouched, got %q", info.Name)
	}

	// 再跑一遍应当无事可做
	filled, err = RepairPersonalInfo(gdb)
	if err != nil {
		t.Fatalf("second repair failed: %v", err)
	}
	if filled != 0 {
		t.Fatalf("expected second repair to fill nothing, filled %d", filled)
	}
}
