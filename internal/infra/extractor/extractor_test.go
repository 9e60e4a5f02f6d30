package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/LouYuanbo1/counselcrawler/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func listPage(rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="list_table"><table>
<caption>상담사례의 번호, 분야, 제목, 작성일, 조회 정보를 제공</caption>
<thead><tr><th>번호</th><th>분야</th><th>제목</th><th>작성일</th><th>조회</th></tr></thead>
<tbody>`)
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&sb, "<td>%s</td>", cell)
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody></table></div></body></html>")
	return sb.String()
}

func TestExtractRowsInDocumentOrder(t *testing.T) {
	markup := listPage(
		[]string{"1", "금융", "제목A", "2024-01-01", "10"},
		[]string{"2", "세무", "제목B", "2024-01-02", "5"},
		[]string{"3", "노무", "제목C", "2024-01-03", "0"},
	)

	got := Extract(markup)

	require.Equal(t, []entity.CaseRecord{
		{CaseNumber: "1", Domain: "금융", Title: "제목A", WrittenDate: "2024-01-01", Views: "10"},
		{CaseNumber: "2", Domain: "세무", Title: "제목B", WrittenDate: "2024-01-02", Views: "5"},
		{CaseNumber: "3", Domain: "노무", Title: "제목C", WrittenDate: "2024-01-03", Views: "0"},
	}, got)
}

func TestExtractIgnoresCellsAfterFifth(t *testing.T) {
	base := []string{"1", "금융", "제목A", "2024-01-01", "10"}
	a := Extract(listPage(append(append([]string{}, base...), "첨부")))
	b := Extract(listPage(append(append([]string{}, base...), "다른값", "<a href='#'>more</a>")))

	require.Len(t, a, 1)
	require.Equal(t, a, b)
}

func TestExtractSkipsShortRows(t *testing.T) {
	markup := listPage(
		[]string{"1", "금융", "제목A", "2024-01-01", "10"},
		[]string{"공지", "세무", "제목B", "2024-01-02"},
		[]string{"3", "노무", "제목C", "2024-01-03", "7"},
	)

	got := Extract(markup)

	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].CaseNumber)
	require.Equal(t, "3", got[1].CaseNumber)
}

func TestExtractTrimsCellText(t *testing.T) {
	markup := listPage([]string{" 12 ", "\n\t금융\n", "  <a href=\"#\">제목 A</a>  ", "2024-01-01 ", " 1,024"})

	got := Extract(markup)

	require.Equal(t, []entity.CaseRecord{
		{CaseNumber: "12", Domain: "금융", Title: "제목 A", WrittenDate: "2024-01-01", Views: "1,024"},
	}, got)
}

func TestExtractMissingStructure(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"empty document", ""},
		{"no container", `<div class="board"><table><tbody><tr><td>1</td><td>2</td><td>3</td><td>4</td><td>5</td></tr></tbody></table></div>`},
		{"no table", `<div class="list_table"><p>검색 결과가 없습니다.</p></div>`},
		{"no tbody", `<div class="list_table"><table></table></div>`},
		{"no rows", `<div class="list_table"><table><tbody></tbody></table></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.Empty(t, Extract(tt.markup))
			})
		})
	}
}

func TestExtractContainerWithMultipleClasses(t *testing.T) {
	markup := `<div class="board list_table type2"><table><tbody>
<tr><td>9</td><td>수출</td><td>제목</td><td>2024-02-01</td><td>3</td></tr>
</tbody></table></div>`

	require.Len(t, Extract(markup), 1)
}

func TestExtractIsIdempotent(t *testing.T) {
	markup := listPage(
		[]string{"1", "금융", "제목A", "2024-01-01", "10"},
		[]string{"2", "세무", "제목B", "2024-01-02", "5"},
	)

	require.Equal(t, Extract(markup), Extract(markup))
}
