package collector

import (
	"fmt"
	"log"
	"time"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/LouYuanbo1/counselcrawler/internal/infra/crawler/types"
	"github.com/gocolly/colly/v2"
)

type collyCrawler struct {
	colly *colly.Collector
}

func InitCollyCrawler(cfg *config.Config) CollyCrawler {
	opts := []colly.CollectorOption{
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	}
	if cfg.Colly.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.Colly.UserAgent))
	}
	c := colly.NewCollector(opts...)
	if cfg.Colly.RequestTimeoutSeconds > 0 {
		c.SetRequestTimeout(time.Duration(cfg.Colly.RequestTimeoutSeconds) * time.Second)
	}
	log.Printf("InitCollyCrawler, requestTimeout: %ds", cfg.Colly.RequestTimeoutSeconds)
	return &collyCrawler{
		colly: c,
	}
}

func (cc *collyCrawler) Fetch(url, selector string) (*types.PageResult, error) {
	// Clone不会复制回调,每次获取都使用独立的回调
	c := cc.colly.Clone()
	result := &types.PageResult{Url: url}
	c.OnResponse(func(r *colly.Response) {
		result.Html = string(r.Body)
	})
	c.OnHTML(selector, func(_ *colly.HTMLElement) {
		result.Found = true
	})
	statusCode := 0
	c.OnError(func(r *colly.Response, _ error) {
		statusCode = r.StatusCode
	})
	if err := c.Visit(url); err != nil {
		// 有响应但状态码异常时与浏览器引擎一致,视为该页未找到结果表格
		if statusCode != 0 {
			log.Printf("[提示] %s 返回状态码 %d", url, statusCode)
			return &types.PageResult{Url: url}, nil
		}
		return nil, fmt.Errorf("访问URL失败: %w", err)
	}
	if !result.Found {
		result.Html = ""
	}
	return result, nil
}
