package types

// PageResult 单个列表页的获取结果
// Found为false表示在等待时间内没有出现结果表格,此时Html为空
type PageResult struct {
	PageIndex int
	Url       string
	Found     bool
	Html      string
}
