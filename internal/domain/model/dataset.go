package model

import "github.com/LouYuanbo1/counselcrawler/internal/domain/entity"

// Dataset 带列名的表格数据,记录按页码顺序及页内行顺序排列
type Dataset struct {
	columns []string
	records []entity.CaseRecord
}

func NewDataset() *Dataset {
	return &Dataset{
		columns: entity.Columns(),
		records: make([]entity.CaseRecord, 0),
	}
}

// Append 追加一页的记录,不去重也不排序
func (d *Dataset) Append(records ...entity.CaseRecord) {
	d.records = append(d.records, records...)
}

func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) Records() []entity.CaseRecord {
	return append([]entity.CaseRecord(nil), d.records...)
}

// Rows 返回不含表头的二维字符串表
func (d *Dataset) Rows() [][]string {
	rows := make([][]string, 0, len(d.records))
	for _, r := range d.records {
		rows = append(rows, r.Fields())
	}
	return rows
}

// Head 返回前n条记录构成的新数据集
func (d *Dataset) Head(n int) *Dataset {
	n = max(0, min(n, len(d.records)))
	head := NewDataset()
	head.Append(d.records[:n]...)
	return head
}
