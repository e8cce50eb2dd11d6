package main

import (
	"log"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/config"
	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"github.com/aldrsze/Personal-Portfolio-Website/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// 初始化数据库并写入首次启动所需的默认数据
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.Seed(db.DB); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// 可选的管理员自举账号，默认账号已存在时不会重复创建
	if err := db.EnsureAdmin(db.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}

	// 显式触发的个人信息回填，只补空字段
	if cfg.RepairInfo {
		filled, err := db.RepairPersonalInfo(db.DB)
		if err != nil {
			log.Fatalf("failed to repair personal info: %v", err)
		}
		log.Printf("personal info repair filled %d empty fields", filled)
	}

	r := router.SetupRouter(db.DB, cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath, cfg.TemplateGlob)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
