package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"github.com/aldrsze/Personal-Portfolio-Website/internal/service"
	"github.com/gin-gonic/gin"
)

// batchItemPayload 是前端提交的批量项原始形态，id 可能是数字或字面量 "new"。
type batchItemPayload struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}

// resolveBatchID 在入口处一次性解析 id 标签：数字表示既有内容，
// "new"、null 或缺省表示新增。
func resolveBatchID(raw json.RawMessage) (*uint, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == `"new"` {
		return nil, nil
	}

	var id uint
	if err := json.Unmarshal(raw, &id); err != nil {
		// 兼容把数字放进字符串的前端序列化
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("invalid batch item id %s", trimmed)
		}
		if text == "new" {
			return nil, nil
		}
		if _, err := fmt.Sscanf(text, "%d", &id); err != nil {
			return nil, fmt.Errorf("invalid batch item id %q", text)
		}
	}
	return &id, nil
}

// parseBatchForm 解析 multipart 表单中的 updates/deletes 字段，
// 并把随表单提交的每项图片装载进对应的批量项。
func parseBatchForm(c *gin.Context, imageKeyPrefix string) ([]service.BatchItem, []uint, error) {
	var payloads []batchItemPayload
	if raw := c.PostForm("updates"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
			return nil, nil, fmt.Errorf("invalid updates payload: %w", err)
		}
	}

	var deletes []uint
	if raw := c.PostForm("deletes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &deletes); err != nil {
			return nil, nil, fmt.Errorf("invalid deletes payload: %w", err)
		}
	}

	items := make([]service.BatchItem, 0, len(payloads))
	for _, payload := range payloads {
		id, err := resolveBatchID(payload.ID)
		if err != nil {
			return nil, nil, err
		}

		item := service.BatchItem{
			ID:          id,
			Title:       strings.TrimSpace(payload.Title),
			Description: strings.TrimSpace(payload.Description),
			ImageURL:    strings.TrimSpace(payload.ImageURL),
		}

		if imageKeyPrefix != "" {
			key := imageKeyPrefix + rawIDKey(payload.ID)
			if upload, err := loadFormImage(c, key); err != nil {
				return nil, nil, err
			} else if upload != nil {
				item.Image = upload
			}
		}

		items = append(items, item)
	}

	return items, deletes, nil
}

// rawIDKey 还原前端用于文件字段名的 id 片段（数字或 "new"）。
func rawIDKey(raw json.RawMessage) string {
	trimmed := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if trimmed == "" || trimmed == "null" {
		return "new"
	}
	return trimmed
}

func loadFormImage(c *gin.Context, key string) (*service.ImageUpload, error) {
	header, err := c.FormFile(key)
	if err != nil {
		// 缺失的文件字段表示该项没有新图片
		return nil, nil
	}
	if header.Filename == "" {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded image: %w", err)
	}

	return &service.ImageUpload{Filename: header.Filename, Data: data}, nil
}

// UpdateContent 处理单条内容的新增或更新。
func (a *API) UpdateContent(c *gin.Context) {
	section := c.Param("section")

	input := service.ContentItemInput{}
	if raw := strings.TrimSpace(c.PostForm("id")); raw != "" {
		var id uint
		if _, err := fmt.Sscanf(raw, "%d", &id); err != nil {
			flashAndRedirect(c, "error", "Invalid content id.")
			return
		}
		input.ID = &id
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	input.Title = &title
	input.Description = &description

	if _, err := a.contents.UpsertItem(section, input); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSection):
			flashAndRedirect(c, "error", "Unknown content section.")
		case errors.Is(err, service.ErrContentNotFound):
			flashAndRedirect(c, "error", "Content item not found.")
		default:
			flashAndRedirect(c, "error", "Failed to update content.")
		}
		return
	}

	flashAndRedirect(c, "success", sectionLabel(section)+" updated successfully!")
}

// DeleteContent 删除单条内容，重复删除同一 ID 不报错。
func (a *API) DeleteContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		flashAndRedirect(c, "error", "Invalid content id.")
		return
	}

	if err := a.contents.DeleteItem(id); err != nil {
		flashAndRedirect(c, "error", "Failed to delete content.")
		return
	}

	flashAndRedirect(c, "success", "Content deleted successfully!")
}

// BatchUpdateSkills 批量保存技能分区。
func (a *API) BatchUpdateSkills(c *gin.Context) {
	updates, deletes, err := parseBatchForm(c, "")
	if err != nil {
		flashAndRedirect(c, "error", "Invalid skills payload.")
		return
	}

	if _, err := a.batches.Apply(db.SectionSkills, updates, deletes); err != nil {
		flashAndRedirect(c, "error", "Failed to update skills.")
		return
	}

	flashAndRedirect(c, "success", "Skills updated successfully!")
}

// BatchUpdateTech 批量保存技术栈分区，支持随表单上传图标。
func (a *API) BatchUpdateTech(c *gin.Context) {
	updates, deletes, err := parseBatchForm(c, "tech_image_")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid tech stack payload")
		return
	}

	if _, err := a.batches.Apply(db.SectionTechStack, updates, deletes); err != nil {
		if errors.Is(err, service.ErrImageType) || errors.Is(err, service.ErrImageDecode) {
			respondError(c, http.StatusBadRequest, "unsupported image file")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update tech stack")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BatchUpdateProjects 批量保存项目分区，支持随表单上传截图。
func (a *API) BatchUpdateProjects(c *gin.Context) {
	updates, deletes, err := parseBatchForm(c, "project_image_")
	if err != nil {
		flashAndRedirect(c, "error", "Invalid projects payload.")
		return
	}

	if _, err := a.batches.Apply(db.SectionProjects, updates, deletes); err != nil {
		if errors.Is(err, service.ErrImageType) || errors.Is(err, service.ErrImageDecode) {
			flashAndRedirect(c, "error", "Unsupported image file.")
			return
		}
		flashAndRedirect(c, "error", "Failed to update projects.")
		return
	}

	flashAndRedirect(c, "success", "Projects updated successfully!")
}

func sectionLabel(section string) string {
	if section == "" {
		return "Content"
	}
	label := strings.ReplaceAll(section, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
