package model

// 启用状态，用户、角色、资源共用
const (
	StatusDisabled int8 = 0
	StatusEnabled  int8 = 1
)

// Role 角色，持有一组权限资源
type Role struct {
	BaseModel
	Name      string     `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Code      string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Status    int8       `gorm:"not null" json:"status"`
	Remark    string     `gorm:"size:500" json:"remark"`
	Resources []Resource `gorm:"many2many:sys_role_resource;" json:"resources"`
}

func (Role) TableName() string {
	return "sys_role"
}

// Enabled 是否启用
func (r *Role) Enabled() bool {
	return r.Status == StatusEnabled
}

// Resource 权限资源，Code 为权限标识，支持 * 和 ? 通配
// 例如 CMS_ACCESS_* 覆盖 CMS_ACCESS_ReportAdmin
type Resource struct {
	BaseModel
	Name   string `gorm:"size:50;not null" json:"name"`
	Code   string `gorm:"size:100;index" json:"code"`
	Status int8   `gorm:"not null" json:"status"`
	Remark string `gorm:"size:500" json:"remark"`
}

func (Resource) TableName() string {
	return "sys_resource"
}

// RoleResource 角色资源关联
type RoleResource struct {
	RoleID     uint `gorm:"primaryKey"`
	ResourceID uint `gorm:"primaryKey"`
}

func (RoleResource) TableName() string {
	return "sys_role_resource"
}
