package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/LouYuanbo1/counselcrawler/internal/domain/model"
	"github.com/LouYuanbo1/counselcrawler/internal/infra/extractor"
	"github.com/LouYuanbo1/counselcrawler/internal/service/crawler/param"
)

// ErrBrowserStart 浏览器会话无法启动,整个爬取中止
var ErrBrowserStart = errors.New("浏览器会话启动失败")

type CounselingService interface {
	Scrape(ctx context.Context, params *param.Scrape) (*model.Dataset, error)
}

type counselingService struct {
	newFetcher FetcherFactory
}

func InitCounselingService(newFetcher FetcherFactory) CounselingService {
	return &counselingService{
		newFetcher: newFetcher,
	}
}

// ScrapeCounselingList 按配置中的引擎爬取咨询案例列表
func ScrapeCounselingList(ctx context.Context, cfg *config.Config, params *param.Scrape) (*model.Dataset, error) {
	return InitCounselingService(NewFetcherFactory(cfg)).Scrape(ctx, params)
}

// Scrape 依次处理 1..MaxPages 页
// 单页未找到结果表格时跳过该页,会话在所有退出路径上只关闭一次
func (cs *counselingService) Scrape(ctx context.Context, params *param.Scrape) (*model.Dataset, error) {
	if params == nil {
		params = param.DefaultScrape()
	}
	dataset := model.NewDataset()
	if params.MaxPages <= 0 {
		log.Printf("MaxPages为 %d, 不进行爬取", params.MaxPages)
		return dataset, nil
	}

	fetcher, err := cs.newFetcher(ctx, params.SleepDuration())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBrowserStart, err)
	}
	defer fetcher.Close()

	log.Printf("开始爬取咨询案例列表, 共 %d 页", params.MaxPages)
	for pageIndex := 1; pageIndex <= params.MaxPages; pageIndex++ {
		log.Printf("=== 第 %d 页处理中 ===", pageIndex)

		result, err := fetcher.Fetch(ctx, pageIndex)
		if err != nil {
			return nil, fmt.Errorf("第 %d 页获取失败: %w", pageIndex, err)
		}
		if !result.Found {
			log.Printf("[提示] %s 内未找到结果表格, 跳过第 %d 页", result.Url, pageIndex)
			continue
		}

		records := extractor.Extract(result.Html)
		dataset.Append(records...)
		log.Printf("第 %d 页提取到 %d 条记录", pageIndex, len(records))
	}

	log.Printf("爬取完成, 共 %d 条记录", dataset.Len())
	return dataset, nil
}
