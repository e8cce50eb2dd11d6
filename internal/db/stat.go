package db

// 站点计数器的固定键名。
const (
	StatVisits        = "visits"
	StatProfileClicks = "profile_clicks"
	StatLikes         = "likes"
)

// StatNames 列出全部合法的计数器键。
var StatNames = []string{StatVisits, StatProfileClicks, StatLikes}

// IsStat 判断给定键是否为已知计数器。
func IsStat(name string) bool {
	for _, stat := range StatNames {
		if stat == name {
			return true
		}
	}
	return false
}

// Stat 是一个只增不减的命名计数器。
type Stat struct {
	Name  string `gorm:"primaryKey;size:32"`
	Count int64  `gorm:"default:0"`
}

// TableName 指定自定义表名。
func (Stat) TableName() string {
	return "stats"
}
