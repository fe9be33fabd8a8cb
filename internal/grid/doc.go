// Package grid 将报表记录渲染为表格。
//
// 包含单元格取值与格式化、内存排序分页、CSV/XLSX 导出、打印页面以及侧栏报表片段。
package grid
