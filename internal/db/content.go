package db

// 内容分区的固定标签，Aggregator 与 Reconciler 都依赖这个闭集。
const (
	SectionSkills    = "skills"
	SectionTechStack = "tech_stack"
	SectionProjects  = "projects"
	SectionAwards    = "awards"
	SectionEducation = "education"
)

// Sections 按前台展示顺序列出全部内容分区。
var Sections = []string{
	SectionSkills,
	SectionTechStack,
	SectionProjects,
	SectionAwards,
	SectionEducation,
}

// IsSection 判断给定标签是否属于已知分区。
func IsSection(name string) bool {
	for _, section := range Sections {
		if section == name {
			return true
		}
	}
	return false
}

// ContentItem 表示某个分区下的一条有序内容。
// OrderNum 仅作为分区内的次级排序键，越小越靠前。
type ContentItem struct {
	ID          uint   `gorm:"primaryKey"`
	Section     string `gorm:"size:32;not null;index"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:255"`
	LinkURL     string `gorm:"size:255"`
	OrderNum    int    `gorm:"default:0"`
}

// TableName 指定自定义表名。
func (ContentItem) TableName() string {
	return "content"
}
