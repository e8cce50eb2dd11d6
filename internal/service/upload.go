package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	// 注册上传校验所需的图片解码器
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var (
	// ErrImageType 在扩展名不在白名单内时返回
	ErrImageType = errors.New("disallowed image type")
	// ErrImageDecode 在文件内容无法按图片解码时返回
	ErrImageDecode = errors.New("file is not a decodable image")
)

// allowedImageExts 是上传图片的扩展名白名单，匹配不区分大小写。
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ImageStore 将上传图片落盘到固定目录，并生成防冲突的文件名。
type ImageStore struct {
	dir     string
	urlPath string
}

// NewImageStore 构造 ImageStore；urlPath 是落盘文件对外暴露的 URL 前缀。
func NewImageStore(dir, urlPath string) *ImageStore {
	return &ImageStore{
		dir:     dir,
		urlPath: strings.TrimRight(urlPath, "/"),
	}
}

// AllowedImageName 判断文件名的扩展名是否在白名单内。
func AllowedImageName(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// Save 校验并保存一张上传图片，返回其公开 URL。
// 扩展名白名单之外的文件和无法解码的内容都会在写盘前被拒绝。
func (s *ImageStore) Save(prefix, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: %s", ErrImageType, filepath.Ext(filename))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s%s-%s%s", prefix, time.Now().Format("20060102"), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return s.urlPath + "/" + name, nil
}
