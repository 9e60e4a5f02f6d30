package crawler

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/LouYuanbo1/counselcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/counselcrawler/internal/infra/crawler/collector"
	"github.com/LouYuanbo1/counselcrawler/internal/infra/crawler/types"
)

// Fetcher 按页码获取渲染后的列表页
type Fetcher interface {
	// Fetch 结果表格未在等待时间内出现时返回Found为false的结果,而不是错误
	Fetch(ctx context.Context, pageIndex int) (*types.PageResult, error)
	Close()
}

// FetcherFactory 打开一个新的会话,sleep为每次导航后的固定等待时间
type FetcherFactory func(ctx context.Context, sleep time.Duration) (Fetcher, error)

// PageURL 在列表页URL上设置分页参数,保留其余查询参数
func PageURL(listUrl, pageParam string, pageIndex int) (string, error) {
	u, err := url.Parse(listUrl)
	if err != nil {
		return "", fmt.Errorf("解析列表页URL失败: %w", err)
	}
	query := u.Query()
	query.Set(pageParam, strconv.Itoa(pageIndex))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// NewFetcherFactory 根据配置中的引擎创建对应的Fetcher
func NewFetcherFactory(cfg *config.Config) FetcherFactory {
	return func(ctx context.Context, sleep time.Duration) (Fetcher, error) {
		switch cfg.Engine {
		case config.EngineColly:
			return InitCollyFetcher(collector.InitCollyCrawler(cfg), cfg.Site, sleep), nil
		case config.EngineRod:
			chromeCrawler, err := chrome.InitRodCrawler(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return InitChromeFetcher(chromeCrawler, cfg.Site, sleep), nil
		default:
			chromeCrawler, err := chrome.InitChromedpCrawler(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return InitChromeFetcher(chromeCrawler, cfg.Site, sleep), nil
		}
	}
}

type chromeFetcher struct {
	chromeCrawler chrome.ChromeCrawler
	site          config.Site
	sleep         time.Duration
}

func InitChromeFetcher(chromeCrawler chrome.ChromeCrawler, site config.Site, sleep time.Duration) Fetcher {
	return &chromeFetcher{
		chromeCrawler: chromeCrawler,
		site:          site,
		sleep:         sleep,
	}
}

func (cf *chromeFetcher) Fetch(ctx context.Context, pageIndex int) (*types.PageResult, error) {
	pageUrl, err := PageURL(cf.site.ListUrl, cf.site.PageParam, pageIndex)
	if err != nil {
		return nil, err
	}
	result := &types.PageResult{PageIndex: pageIndex, Url: pageUrl}

	if err := cf.chromeCrawler.InitAndNavigate(pageUrl); err != nil {
		return nil, fmt.Errorf("导航失败: %w", err)
	}
	// 固定等待,与是否加载完成无关
	if err := cf.chromeCrawler.Sleep(cf.sleep); err != nil {
		return nil, fmt.Errorf("等待页面加载失败: %w", err)
	}
	found, err := cf.chromeCrawler.WaitFor(cf.site.ContainerSelector, cf.site.WaitTimeout())
	if err != nil {
		return nil, fmt.Errorf("等待 %s 失败: %w", cf.site.ContainerSelector, err)
	}
	if !found {
		return result, nil
	}

	html, err := cf.chromeCrawler.HTML()
	if err != nil {
		return nil, err
	}
	result.Found = true
	result.Html = html
	return result, nil
}

func (cf *chromeFetcher) Close() {
	cf.chromeCrawler.Close()
}

type collyFetcher struct {
	collyCrawler collector.CollyCrawler
	site         config.Site
	sleep        time.Duration
}

func InitCollyFetcher(collyCrawler collector.CollyCrawler, site config.Site, sleep time.Duration) Fetcher {
	return &collyFetcher{
		collyCrawler: collyCrawler,
		site:         site,
		sleep:        sleep,
	}
}

func (cf *collyFetcher) Fetch(ctx context.Context, pageIndex int) (*types.PageResult, error) {
	pageUrl, err := PageURL(cf.site.ListUrl, cf.site.PageParam, pageIndex)
	if err != nil {
		return nil, err
	}
	result, err := cf.collyCrawler.Fetch(pageUrl, cf.site.ContainerSelector)
	if err != nil {
		return nil, err
	}
	result.PageIndex = pageIndex
	if err := sleepContext(ctx, cf.sleep); err != nil {
		return nil, err
	}
	return result, nil
}

func (cf *collyFetcher) Close() {
	log.Printf("colly 无需关闭浏览器")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
