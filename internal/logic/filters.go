package logic

import (
	"strings"

	"yqhp/reports/common/utils"
	"yqhp/reports/internal/report"
)

// FilterPrefix 筛选参数的查询键前缀
const FilterPrefix = "filters"

// ParseFilters 从 filters[Name]=value 形式的查询参数中提取筛选条件，值原样传给报表
func ParseFilters(query map[string]string) report.Params {
	params := report.Params{}
	for key, value := range query {
		if name, ok := filterName(key); ok {
			params[name] = value
		}
	}
	return params
}

func filterName(key string) (string, bool) {
	if !strings.HasPrefix(key, FilterPrefix+"[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	name := key[len(FilterPrefix)+1 : len(key)-1]
	return name, !utils.IsEmpty(name)
}
