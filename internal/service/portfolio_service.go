package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将长文本渲染为净化后的 HTML，渲染失败时回退原文。
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.Sanitize(buf.String()))
}

// ProjectView 是一条带渲染后描述的项目内容。
type ProjectView struct {
	db.ContentItem
	DescriptionHTML template.HTML
}

// PortfolioData 是渲染前台页面所需的完整只读快照。
// 它与存储完全断开，修改快照不会影响数据库。
type PortfolioData struct {
	PersonalInfo        db.PersonalInfo
	IntroHTML           template.HTML
	CareerObjectiveHTML template.HTML
	Skills              []db.ContentItem
	TechStack           []db.ContentItem
	Projects            []ProjectView
	Awards              []db.ContentItem
	Education           []db.ContentItem
	Visits              int64
	ProfileClicks       int64
	Likes               int64
	Theme               db.ThemeSetting
}

// PortfolioService 一次性装配前台所需的全部数据。
type PortfolioService struct {
	db       *gorm.DB
	profiles *ProfileService
	contents *ContentService
	stats    *StatsService
	themes   *ThemeService
}

// NewPortfolioService 构造 PortfolioService。
func NewPortfolioService(gdb *gorm.DB) *PortfolioService {
	return &PortfolioService{
		db:       gdb,
		profiles: NewProfileService(gdb),
		contents: NewContentService(gdb),
		stats:    NewStatsService(gdb),
		themes:   NewThemeService(gdb),
	}
}

// Snapshot 读取个人信息、五个内容分区、三个计数器与当前主题，
// 组装成一份一致的只读视图。
func (s *PortfolioService) Snapshot() (PortfolioData, error) {
	var data PortfolioData

	info, err := s.profiles.Get()
	if err != nil {
		return data, fmt.Errorf("snapshot personal info: %w", err)
	}
	data.PersonalInfo = *info
	data.IntroHTML = renderMarkdown(info.Intro)
	data.CareerObjectiveHTML = renderMarkdown(info.CareerObjective)

	if data.Skills, err = s.contents.ListSection(db.SectionSkills); err != nil {
		return data, err
	}
	if data.TechStack, err = s.contents.ListSection(db.SectionTechStack); err != nil {
		return data, err
	}
	if data.Awards, err = s.contents.ListSection(db.SectionAwards); err != nil {
		return data, err
	}
	if data.Education, err = s.contents.ListSection(db.SectionEducation); err != nil {
		return data, err
	}

	projects, err := s.contents.ListSection(db.SectionProjects)
	if err != nil {
		return data, err
	}
	data.Projects = make([]ProjectView, 0, len(projects))
	for _, project := range projects {
		data.Projects = append(data.Projects, ProjectView{
			ContentItem:     project,
			DescriptionHTML: renderMarkdown(project.Description),
		})
	}

	counts, err := s.stats.Counts()
	if err != nil {
		return data, err
	}
	data.Visits = counts[db.StatVisits]
	data.ProfileClicks = counts[db.StatProfileClicks]
	data.Likes = counts[db.StatLikes]

	if data.Theme, err = s.themes.Current(); err != nil {
		return data, err
	}

	return data, nil
}
