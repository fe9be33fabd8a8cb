package model

import "fmt"

// File 资源文件
type File struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name"`
	Title    string `gorm:"size:255" json:"title"`
	Filename string `gorm:"size:500;not null" json:"filename"` // 相对资源目录的路径
	Size     int64  `json:"size"`
	Missing  bool   `gorm:"default:false;index" json:"missing"` // 磁盘上已不存在
}

// TableName 表名
func (File) TableName() string {
	return "site_file"
}

// CMSEditLink 后台编辑地址
func (f *File) CMSEditLink() string {
	return fmt.Sprintf("admin/assets/edit/%d", f.ID)
}
