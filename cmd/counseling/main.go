package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/LouYuanbo1/counselcrawler/internal/infra/export"
	"github.com/LouYuanbo1/counselcrawler/internal/service/crawler"
	"github.com/LouYuanbo1/counselcrawler/internal/service/crawler/param"
)

// 所有固定参数(列表页URL、等待超时、浏览器启动选项、输出路径)都在嵌入的配置文件中
//
//go:embed appconfig/appconfig.json
var appConfig []byte

func main() {
	if err := run(); err != nil {
		log.Fatalf("爬取失败: %v", err)
	}
}

func run() error {
	appcfg, err := config.ParseConfig(appConfig)
	if err != nil {
		return fmt.Errorf("解析配置失败: %w", err)
	}

	// 收到中断信号时取消context,浏览器随之关闭
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := crawler.ScrapeCounselingList(ctx, appcfg, param.DefaultScrape())
	if err != nil {
		return err
	}

	export.Preview(os.Stdout, dataset, appcfg.Output.PreviewRows)
	if err := export.WriteCSV(appcfg.Output.CsvPath, dataset); err != nil {
		return err
	}
	if appcfg.Output.XlsxPath != "" {
		if err := export.WriteXLSX(appcfg.Output.XlsxPath, dataset); err != nil {
			return err
		}
	}
	fmt.Println("목록 크롤링 완료")
	return nil
}
