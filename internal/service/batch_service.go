package service

import (
	"bytes"
	"fmt"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"gorm.io/gorm"
)

// BatchService 将一次后台提交的整批 upsert 与 delete 作为单个事务
// 应用到某一个分区，中途失败不会留下改了一半的分区。
type BatchService struct {
	db     *gorm.DB
	images *ImageStore
}

// NewBatchService 构造 BatchService。
func NewBatchService(gdb *gorm.DB, images *ImageStore) *BatchService {
	return &BatchService{db: gdb, images: images}
}

// ImageUpload 是随批量项一起提交的图片载荷。
type ImageUpload struct {
	Filename string
	Data     []byte
}

// BatchItem 是批量载荷中的一项。ID 为 nil 表示新增（总是插入），
// 否则按 ID 更新既有内容。
type BatchItem struct {
	ID          *uint
	Title       string
	Description string
	ImageURL    string
	Image       *ImageUpload
}

// BatchResult 汇总一次批量操作的结果。
type BatchResult struct {
	Inserted []uint
	Updated  int
	Deleted  int
}

// Apply 先按顺序处理全部 updates，再处理全部 deletes。
// 同一 ID 既出现在 updates 又出现在 deletes 时，净效果是删除。
// 图片在事务开始前校验并落盘，校验失败时整批中止、不产生任何写入。
func (s *BatchService) Apply(section string, updates []BatchItem, deletes []uint) (BatchResult, error) {
	var result BatchResult

	if !db.IsSection(section) {
		return result, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	// 先解决图片：任何一张图片不合法都要在触碰数据库之前失败。
	imageURLs := make([]string, len(updates))
	for i, item := range updates {
		imageURLs[i] = item.ImageURL
		if item.Image == nil {
			continue
		}
		if s.images == nil {
			return result, fmt.Errorf("image upload not configured for section %s", section)
		}
		url, err := s.images.Save(batchImagePrefix(section), item.Image.Filename, bytes.NewReader(item.Image.Data))
		if err != nil {
			return result, err
		}
		imageURLs[i] = url
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		contents := NewContentService(tx)

		for i, item := range updates {
			input := ContentItemInput{
				ID:          item.ID,
				Title:       strPtr(item.Title),
				Description: strPtr(item.Description),
			}
			// 没有新图也没有既有 URL 时保持原值不动。
			if imageURLs[i] != "" {
				input.ImageURL = strPtr(imageURLs[i])
			}

			id, err := contents.UpsertItem(section, input)
			if err != nil {
				return err
			}

			if item.ID == nil {
				result.Inserted = append(result.Inserted, id)
			} else {
				result.Updated++
			}
		}

		for _, id := range deletes {
			if err := contents.DeleteItem(id); err != nil {
				return err
			}
			result.Deleted++
		}

		return nil
	})
	if err != nil {
		return BatchResult{}, fmt.Errorf("apply batch to %s: %w", section, err)
	}

	return result, nil
}

func batchImagePrefix(section string) string {
	switch section {
	case db.SectionTechStack:
		return "tech_"
	case db.SectionProjects:
		return "project_"
	default:
		return section + "_"
	}
}

func strPtr(s string) *string {
	return &s
}
