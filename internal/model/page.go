package model

import "fmt"

// Page 站点页面
type Page struct {
	BaseModel
	ParentID      uint   `gorm:"index" json:"parentId"`
	Title         string `gorm:"size:255;not null" json:"title"`
	URLSegment    string `gorm:"size:255;index" json:"urlSegment"`
	Content       string `gorm:"type:text" json:"content"`
	Published     bool   `gorm:"default:false" json:"published"`
	HasBrokenLink bool   `gorm:"default:false" json:"hasBrokenLink"`
	HasBrokenFile bool   `gorm:"default:false" json:"hasBrokenFile"`
	Sort          int    `gorm:"default:0" json:"sort"`
}

// TableName 表名
func (Page) TableName() string {
	return "site_page"
}

// CMSEditLink 后台编辑地址
func (p *Page) CMSEditLink() string {
	return fmt.Sprintf("admin/pages/edit/show/%d", p.ID)
}

// LastEdited 最后编辑时间
func (p *Page) LastEdited() string {
	if p.UpdatedAt.IsZero() {
		return ""
	}
	return p.UpdatedAt.String()
}

// BrokenReason 失效原因
func (p *Page) BrokenReason() string {
	switch {
	case p.HasBrokenLink && p.HasBrokenFile:
		return "has broken links and files"
	case p.HasBrokenLink:
		return "has broken links"
	case p.HasBrokenFile:
		return "has broken files"
	}
	return ""
}
