package chrome

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
)

type chromedpCrawler struct {
	allocCtxFuc   context.CancelFunc
	pageCtx       context.Context
	pageCtxFuc    context.CancelFunc
	timeoutCtxFuc context.CancelFunc
	closeOnce     sync.Once
}

func chromedpOptions(cfg *config.Config) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
	)
	if cfg.Chromedp.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.Chromedp.UserDataDir))
	}
	if cfg.Chromedp.Bin != "" {
		opts = append(opts, chromedp.ExecPath(cfg.Chromedp.Bin))
	}
	if cfg.Chromedp.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.Chromedp.UserAgent))
	}
	return opts
}

// InitChromedpCrawler 启动浏览器,启动失败时返回错误且不留下任何进程
func InitChromedpCrawler(ctx context.Context, cfg *config.Config) (ChromeCrawler, error) {
	var timeoutCtx context.Context
	var cancelTimeout context.CancelFunc
	if cfg.Chromedp.LifeTime > 0 {
		timeoutCtx, cancelTimeout = context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	} else {
		timeoutCtx, cancelTimeout = context.WithCancel(ctx)
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, chromedpOptions(cfg)...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	cc := &chromedpCrawler{
		allocCtxFuc:   cancelAlloc,
		pageCtx:       pageCtx,
		pageCtxFuc:    cancelPage,
		timeoutCtxFuc: cancelTimeout,
	}
	// 不带任何动作的Run会真正启动浏览器
	if err := chromedp.Run(pageCtx); err != nil {
		cc.Close()
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}
	log.Printf("InitChromedpCrawler, headless: %v, noSandbox: %v", cfg.Chromedp.Headless, cfg.Chromedp.NoSandbox)
	return cc, nil
}

func (cc *chromedpCrawler) Close() {
	cc.closeOnce.Do(func() {
		cc.pageCtxFuc()
		cc.allocCtxFuc()
		cc.timeoutCtxFuc()
		log.Printf("浏览器已关闭")
	})
}

func (cc *chromedpCrawler) InitAndNavigate(url string) error {
	return chromedp.Run(cc.pageCtx, chromedp.Navigate(url))
}

func (cc *chromedpCrawler) Sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return chromedp.Run(cc.pageCtx, chromedp.Sleep(d))
}

func (cc *chromedpCrawler) WaitFor(selector string, timeout time.Duration) (bool, error) {
	waitCtx, cancel := context.WithTimeout(cc.pageCtx, timeout)
	defer cancel()
	err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery))
	if err == nil {
		return true, nil
	}
	// 只有等待本身超时才算"未找到",浏览器被关闭等情况仍然返回错误
	if errors.Is(err, context.DeadlineExceeded) && cc.pageCtx.Err() == nil {
		return false, nil
	}
	return false, err
}

func (cc *chromedpCrawler) HTML() (string, error) {
	var html string
	err := chromedp.Run(cc.pageCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		root, err := dom.GetDocument().Do(ctx)
		if err != nil {
			return err
		}
		html, err = dom.GetOuterHTML().WithNodeID(root.NodeID).Do(ctx)
		return err
	}))
	if err != nil {
		return "", fmt.Errorf("读取页面HTML失败: %w", err)
	}
	return html, nil
}
