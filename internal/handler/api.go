package handler

import (
	"github.com/aldrsze/Personal-Portfolio-Website/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	contents  *service.ContentService
	batches   *service.BatchService
	profiles  *service.ProfileService
	stats     *service.StatsService
	themes    *service.ThemeService
	admins    *service.AdminService
	portfolio *service.PortfolioService
	images    *service.ImageStore
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	images := service.NewImageStore(uploadDir, uploadURL)

	return &API{
		db:        gdb,
		contents:  service.NewContentService(gdb),
		batches:   service.NewBatchService(gdb, images),
		profiles:  service.NewProfileService(gdb),
		stats:     service.NewStatsService(gdb),
		themes:    service.NewThemeService(gdb),
		admins:    service.NewAdminService(gdb),
		portfolio: service.NewPortfolioService(gdb),
		images:    images,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
