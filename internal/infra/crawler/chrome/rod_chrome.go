package chrome

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

type rodCrawler struct {
	ctx       context.Context
	launcher  *launcher.Launcher
	browser   *rod.Browser
	page      *rod.Page
	closeOnce sync.Once
}

func rodLauncher(cfg *config.Config) *launcher.Launcher {
	l := launcher.New().
		Headless(cfg.Rod.Headless).
		NoSandbox(cfg.Rod.NoSandbox).
		Leakless(cfg.Rod.Leakless)
	if cfg.Rod.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	if cfg.Rod.Bin != "" {
		l = l.Bin(cfg.Rod.Bin)
	}
	return l
}

func InitRodCrawler(ctx context.Context, cfg *config.Config) (ChromeCrawler, error) {
	l := rodLauncher(cfg).Context(ctx)
	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}
	log.Printf("InitRodCrawler, 浏览器连接URL: %s", url)
	return &rodCrawler{
		ctx:      ctx,
		launcher: l,
		browser:  browser,
		page:     page,
	}, nil
}

func (rc *rodCrawler) Close() {
	rc.closeOnce.Do(func() {
		if err := rc.browser.Close(); err != nil {
			log.Printf("关闭浏览器失败: %v", err)
		}
		rc.launcher.Cleanup()
		log.Printf("浏览器已关闭")
	})
}

func (rc *rodCrawler) InitAndNavigate(url string) error {
	if err := rc.page.Navigate(url); err != nil {
		return err
	}
	return rc.page.WaitLoad()
}

func (rc *rodCrawler) Sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-rc.ctx.Done():
		return rc.ctx.Err()
	}
}

func (rc *rodCrawler) WaitFor(selector string, timeout time.Duration) (bool, error) {
	page := rc.page.Timeout(timeout)
	_, err := page.Element(selector)
	page.CancelTimeout()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, context.DeadlineExceeded) && rc.ctx.Err() == nil {
		return false, nil
	}
	return false, err
}

func (rc *rodCrawler) HTML() (string, error) {
	html, err := rc.page.HTML()
	if err != nil {
		return "", fmt.Errorf("读取页面HTML失败: %w", err)
	}
	return html, nil
}
