package export

import (
	"io"

	"github.com/LouYuanbo1/counselcrawler/internal/domain/model"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Preview 以表格形式打印前n条记录,首列为从0开始的行号
func Preview(w io.Writer, ds *model.Dataset, n int) {
	head := ds.Head(n)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{""}
	for _, c := range head.Columns() {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for i, r := range head.Rows() {
		row := table.Row{i}
		for _, v := range r {
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
