package entity

// 输出文件的列名,顺序与列表页中的<td>顺序一致
const (
	ColumnCaseNumber  = "번호"
	ColumnDomain      = "분야"
	ColumnTitle       = "제목"
	ColumnWrittenDate = "작성일"
	ColumnViews       = "조회수"
)

// NumFields 一条咨询案例至少需要的单元格数量
const NumFields = 5

// Columns 返回列名的副本
func Columns() []string {
	return []string{ColumnCaseNumber, ColumnDomain, ColumnTitle, ColumnWrittenDate, ColumnViews}
}

// CaseRecord 列表页中的一行咨询案例,所有字段都保留原始文本
type CaseRecord struct {
	CaseNumber  string `json:"번호"`
	Domain      string `json:"분야"`
	Title       string `json:"제목"`
	WrittenDate string `json:"작성일"`
	Views       string `json:"조회수"`
}

// NewCaseRecord 用前5个单元格的文本构造记录,不足5个时返回false
func NewCaseRecord(cells []string) (CaseRecord, bool) {
	if len(cells) < NumFields {
		return CaseRecord{}, false
	}
	return CaseRecord{
		CaseNumber:  cells[0],
		Domain:      cells[1],
		Title:       cells[2],
		WrittenDate: cells[3],
		Views:       cells[4],
	}, true
}

// Fields 按列顺序返回字段
func (r CaseRecord) Fields() []string {
	return []string{r.CaseNumber, r.Domain, r.Title, r.WrittenDate, r.Views}
}
