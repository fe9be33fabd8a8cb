package types

import (
	"yqhp/reports/internal/model"

	"github.com/jinzhu/copier"
)

// ToUserInfo 将 model.User 转换为 UserInfo
func ToUserInfo(u *model.User) *UserInfo {
	if u == nil {
		return nil
	}
	info := &UserInfo{}
	if err := copier.Copy(info, u); err != nil {
		return &UserInfo{ID: u.ID, Username: u.Username}
	}
	if info.Roles == nil {
		info.Roles = []RoleRef{}
	}
	return info
}
