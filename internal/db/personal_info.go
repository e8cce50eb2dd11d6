package db

// PersonalInfoID 是个人信息单例行的固定主键。
const PersonalInfoID = 1

// PersonalInfo 保存前台展示的个人资料，始终只有 id=1 一行。
// 字段缺省为空字符串，行本身在初始化后永不删除。
type PersonalInfo struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:120"`
	Intro           string `gorm:"type:text"`
	CareerObjective string `gorm:"type:text"`
	Email           string `gorm:"size:120"`
	Phone           string `gorm:"size:40"`
	Address         string `gorm:"size:255"`
	Age             string `gorm:"size:16"`
	Birthday        string `gorm:"size:40"`
	Gender          string `gorm:"size:20"`
	CivilStatus     string `gorm:"size:30"`
	Nationality     string `gorm:"size:40"`
	Religion        string `gorm:"size:60"`
	Language        string `gorm:"size:120"`
	Height          string `gorm:"size:20"`
	Weight          string `gorm:"size:20"`
	Facebook        string `gorm:"size:255"`
	Github          string `gorm:"size:255"`
	Linkedin        string `gorm:"size:255"`
	AboutWebsite    string `gorm:"type:text"`
	ProfileImage    string `gorm:"size:255"`
}

// TableName 指定自定义表名。
func (PersonalInfo) TableName() string {
	return "personal_info"
}
