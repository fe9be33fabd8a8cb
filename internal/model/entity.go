package model

// 实体类型名
const (
	ClassPage = "Page"
	ClassFile = "File"
	ClassUser = "User"
)

// NewEntity 按类型名创建空实体，用于物化报表查询结果
func NewEntity(class string) (any, bool) {
	switch class {
	case ClassPage:
		return &Page{}, true
	case ClassFile:
		return &File{}, true
	case ClassUser:
		return &User{}, true
	}
	return nil, false
}

// All 需要迁移的模型
func All() []any {
	return []any{
		&User{},
		&Role{},
		&Resource{},
		&UserRole{},
		&RoleResource{},
		&Page{},
		&File{},
	}
}
