package service

import (
	"errors"
	"fmt"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"gorm.io/gorm"
)

// ErrUnknownStat 在计数器键不在闭集内时返回
var ErrUnknownStat = errors.New("unknown stat name")

// StatsService 负责站点计数器的原子自增与读取。
type StatsService struct {
	db *gorm.DB
}

// NewStatsService 构造 StatsService。
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// Increment 原子地将指定计数器加一并返回最新值。
// 自增是单条 UPDATE 语句，并发请求不会丢失更新。
func (s *StatsService) Increment(name string) (int64, error) {
	if !db.IsStat(name) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStat, name)
	}

	result := s.db.Model(&db.Stat{}).
		Where("name = ?", name).
		Update("count", gorm.Expr("count + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("increment stat %s: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStat, name)
	}

	var stat db.Stat
	if err := s.db.First(&stat, "name = ?", name).Error; err != nil {
		return 0, fmt.Errorf("read stat %s: %w", name, err)
	}

	return stat.Count, nil
}

// Counts 返回全部计数器的当前值，缺失的键按 0 处理。
func (s *StatsService) Counts() (map[string]int64, error) {
	var stats []db.Stat
	if err := s.db.Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	counts := make(map[string]int64, len(db.StatNames))
	for _, name := range db.StatNames {
		counts[name] = 0
	}
	for _, stat := range stats {
		counts[stat.Name] = stat.Count
	}

	return counts, nil
}
