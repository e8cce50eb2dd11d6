package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"gorm.io/gorm"
)

// ErrPersonalInfoMissing 在个人信息单例行尚未初始化时返回
var ErrPersonalInfoMissing = errors.New("personal info not initialized")

// ProfileService 负责维护个人信息单例行，提供读取与部分更新能力。
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService。
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// PersonalInfoInput 描述更新个人信息时可设置的字段。
// 指针为 nil 表示"保持原值"，指向空串表示"显式清空"。
type PersonalInfoInput struct {
	Name            *string
	Intro           *string
	CareerObjective *string
	Email           *string
	Phone           *string
	Address         *string
	Age             *string
	Birthday        *string
	Gender          *string
	CivilStatus     *string
	Nationality     *string
	Religion        *string
	Language        *string
	Height          *string
	Weight          *string
	Facebook        *string
	Github          *string
	Linkedin        *string
	AboutWebsite    *string
	ProfileImage    *string
}

// Get 返回个人信息单例行。
func (s *ProfileService) Get() (*db.PersonalInfo, error) {
	var info db.PersonalInfo
	if err := s.db.First(&info, db.PersonalInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonalInfoMissing
		}
		return nil, fmt.Errorf("get personal info: %w", err)
	}
	return &info, nil
}

// Update 按输入内容部分更新个人信息，只有显式提供的字段会改变。
func (s *ProfileService) Update(input PersonalInfoInput) (*db.PersonalInfo, error) {
	info, err := s.Get()
	if err != nil {
		return nil, err
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	assign(&info.Name, input.Name)
	assign(&info.Intro, input.Intro)
	assign(&info.CareerObjective, input.CareerObjective)
	assign(&info.Email, input.Email)
	assign(&info.Phone, input.Phone)
	assign(&info.Address, input.Address)
	assign(&info.Age, input.Age)
	assign(&info.Birthday, input.Birthday)
	assign(&info.Gender, input.Gender)
	assign(&info.CivilStatus, input.CivilStatus)
	assign(&info.Nationality, input.Nationality)
	assign(&info.Religion, input.Religion)
	assign(&info.Language, input.Language)
	assign(&info.Height, input.Height)
	assign(&info.Weight, input.Weight)
	assign(&info.Facebook, input.Facebook)
	assign(&info.Github, input.Github)
	assign(&info.Linkedin, input.Linkedin)
	assign(&info.AboutWebsite, input.AboutWebsite)
	assign(&info.ProfileImage, input.ProfileImage)

	if err := s.db.Save(info).Error; err != nil {
		return nil, fmt.Errorf("update personal info: %w", err)
	}

	return info, nil
}
