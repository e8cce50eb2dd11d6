package service

import (
	"errors"
	"fmt"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrContentNotFound 在按显式 ID 更新不存在的内容时返回
	ErrContentNotFound = errors.New("content item not found")
	// ErrUnknownSection 在分区标签不在闭集内时返回
	ErrUnknownSection = errors.New("unknown content section")
)

// ContentService 是 content 表的唯一读写入口。
type ContentService struct {
	db *gorm.DB
}

// NewContentService 构造 ContentService。
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// ContentItemInput 描述插入或更新内容时可设置的字段。
// 指针为 nil 表示"保持原值"，与"显式置空"区分开。
type ContentItemInput struct {
	ID          *uint
	Title       *string
	Description *string
	ImageURL    *string
	LinkURL     *string
	OrderNum    *int
}

// ListSection 返回指定分区的全部内容，按排序值升序；空分区返回空切片。
func (s *ContentService) ListSection(section string) ([]db.ContentItem, error) {
	if !db.IsSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	var items []db.ContentItem
	if err := s.db.Where("section = ?", section).
		Order("order_num ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list section %s: %w", section, err)
	}

	return items, nil
}

// UpsertItem 在 ID 为 nil 时插入新内容并返回新 ID，否则按 ID 原地更新。
// 未提供的字段保持不变；显式 ID 不存在时返回 ErrContentNotFound。
func (s *ContentService) UpsertItem(section string, input ContentItemInput) (uint, error) {
	if !db.IsSection(section) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	if input.ID == nil {
		item := db.ContentItem{Section: section}
		applyContentInput(&item, input)
		if err := s.db.Create(&item).Error; err != nil {
			return 0, fmt.Errorf("insert content item: %w", err)
		}
		return item.ID, nil
	}

	var item db.ContentItem
	if err := s.db.First(&item, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrContentNotFound
		}
		return 0, fmt.Errorf("find content item: %w", err)
	}

	applyContentInput(&item, input)
	if err := s.db.Save(&item).Error; err != nil {
		return 0, fmt.Errorf("update content item: %w", err)
	}

	return item.ID, nil
}

// DeleteItem 删除指定内容；ID 不存在时视为空操作，删除是幂等的。
func (s *ContentService) DeleteItem(id uint) error {
	if err := s.db.Delete(&db.ContentItem{}, id).Error; err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	return nil
}

func applyContentInput(item *db.ContentItem, input ContentItemInput) {
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.LinkURL != nil {
		item.LinkURL = *input.LinkURL
	}
	if input.OrderNum != nil {
		item.OrderNum = *input.OrderNum
	}
}
