package collector

import "github.com/LouYuanbo1/counselcrawler/internal/infra/crawler/types"

// CollyCrawler 不执行JavaScript,直接通过HTTP获取列表页
type CollyCrawler interface {
	// Fetch 获取url对应的页面,selector在页面中存在时Found为true
	Fetch(url, selector string) (*types.PageResult, error)
}
