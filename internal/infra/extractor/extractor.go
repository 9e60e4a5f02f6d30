// Package extractor 从渲染后的列表页HTML中提取咨询案例
package extractor

import (
	"log"
	"strings"

	"github.com/LouYuanbo1/counselcrawler/internal/domain/entity"
	"github.com/PuerkitoBio/goquery"
)

// ContainerSelector 包裹结果表格的容器
const ContainerSelector = "div.list_table"

// Extract 按 容器 -> table -> tbody -> tr -> td 的顺序提取记录
// 任一层级缺失时记录日志并返回空结果,单元格不足5个的行直接跳过
func Extract(markup string) []entity.CaseRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Printf("[提示] 解析HTML失败: %v", err)
		return nil
	}

	container, ok := first(doc.Selection, ContainerSelector)
	if !ok {
		log.Printf("[提示] 未找到 %s 元素", ContainerSelector)
		return nil
	}
	table, ok := first(container, "table")
	if !ok {
		log.Printf("[提示] 未找到 table 标签")
		return nil
	}
	tbody, ok := first(table, "tbody")
	if !ok {
		log.Printf("[提示] 没有 tbody")
		return nil
	}
	rows := tbody.Find("tr")
	if rows.Length() == 0 {
		log.Printf("[提示] 没有 tr(行)")
		return nil
	}

	records := make([]entity.CaseRecord, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		if record, ok := entity.NewCaseRecord(cellTexts(row)); ok {
			records = append(records, record)
		}
	})
	return records
}

func first(s *goquery.Selection, selector string) (*goquery.Selection, bool) {
	found := s.Find(selector).First()
	return found, found.Length() > 0
}

func cellTexts(row *goquery.Selection) []string {
	return row.Find("td").Map(func(_ int, td *goquery.Selection) string {
		return strings.TrimSpace(td.Text())
	})
}
