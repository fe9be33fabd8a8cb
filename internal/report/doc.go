// Package report 定义后台报表的基础抽象。
//
// 报表是一组标题、说明、列定义与数据来源的组合。具体报表通过嵌入 Base 获得默认实现，
// 再按需实现可选能力接口：
//
//   - RecordSource: 直接返回记录列表
//   - QuerySource:  返回 GORM 查询，由 GetRecords 按 DataClass 物化为实体
//   - ParameterFielder / Sorter / Grouper / SideColumner / ViewPolicy / BreadcrumbProvider
//
// 报表在 init() 中通过 Register 注册到进程级注册表，Registry.Reports 负责
// 排除、实例化与稳定排序。Wrapper 以装饰器方式包装已有报表，在查询前后提供钩子。
//
//	func init() {
//	    report.MustRegister(func() report.Report { return &BrokenLinksReport{} })
//	}
package report
