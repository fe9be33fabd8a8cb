package utils

import (
	"github.com/duke-git/lancet/v2/slice"
)

// SliceUnique 切片去重
func SliceUnique[T comparable](s []T) []T {
	return slice.Unique(s)
}
