package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials 统一表示用户名或密码错误，不区分两者
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken 在改名目标已被占用时返回
	ErrUsernameTaken = errors.New("username already exists")
	// ErrAdminNotFound 在账号不存在时返回
	ErrAdminNotFound = errors.New("admin user not found")
	// ErrPasswordEmpty 在新密码为空白时返回
	ErrPasswordEmpty = errors.New("password must not be empty")
	// ErrUsernameEmpty 在新用户名为空白时返回
	ErrUsernameEmpty = errors.New("username must not be empty")
)

// dummyHash 用于用户名不存在时也执行一次等价的 bcrypt 比较，
// 避免通过响应时间推断账号是否存在。
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-timing-pad"), bcrypt.DefaultCost)

// AdminService 负责管理员账号的验证与维护。
type AdminService struct {
	db *gorm.DB
}

// NewAdminService 构造 AdminService。
func NewAdminService(gdb *gorm.DB) *AdminService {
	return &AdminService{db: gdb}
}

// Verify 校验用户名与密码。无论账号是否存在都会执行一次 bcrypt
// 比较，失败时统一返回 ErrInvalidCredentials。
func (s *AdminService) Verify(username, password string) error {
	var user db.AdminUser
	err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return ErrInvalidCredentials
		}
		return fmt.Errorf("find admin user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// SetPassword 为指定账号设置新密码。
func (s *AdminService) SetPassword(username, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrPasswordEmpty
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	result := s.db.Model(&db.AdminUser{}).
		Where("username = ?", strings.TrimSpace(username)).
		Update("password_hash", string(hashed))
	if result.Error != nil {
		return fmt.Errorf("set admin password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}

// Rename 修改管理员用户名，目标用户名已存在时返回 ErrUsernameTaken。
func (s *AdminService) Rename(oldUsername, newUsername string) error {
	trimmed := strings.TrimSpace(newUsername)
	if trimmed == "" {
		return ErrUsernameEmpty
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.AdminUser{}).
			Where("username = ? AND username != ?", trimmed, strings.TrimSpace(oldUsername)).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		result := tx.Model(&db.AdminUser{}).
			Where("username = ?", strings.TrimSpace(oldUsername)).
			Update("username", trimmed)
		if result.Error != nil {
			return fmt.Errorf("rename admin user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAdminNotFound
		}
		return nil
	})
}
