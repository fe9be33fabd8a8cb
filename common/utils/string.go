package utils

import (
	"github.com/duke-git/lancet/v2/strutil"
)

// IsEmpty 判断字符串是否为空白
func IsEmpty(s string) bool {
	return strutil.IsBlank(s)
}
