package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
)

// ParseConfig 在默认配置之上覆盖JSON中给出的字段
func ParseConfig(byteConfig []byte) (*Config, error) {
	cfg := DefaultConfig()
	err := json.Unmarshal(byteConfig, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Chromedp.UserDataDir != "" {
		absPath, err := filepath.Abs(cfg.Chromedp.UserDataDir)
		if err != nil {
			return nil, err
		}
		cfg.Chromedp.UserDataDir = absPath
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Engine {
	case EngineChromedp, EngineRod, EngineColly:
	default:
		return fmt.Errorf("未知的爬取引擎: %q", cfg.Engine)
	}
	u, err := url.Parse(cfg.Site.ListUrl)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("列表页URL无效: %q", cfg.Site.ListUrl)
	}
	if cfg.Site.PageParam == "" {
		return fmt.Errorf("分页参数名不能为空")
	}
	if cfg.Site.ContainerSelector == "" {
		return fmt.Errorf("结果容器选择器不能为空")
	}
	if cfg.Site.WaitTimeoutSeconds <= 0 {
		return fmt.Errorf("等待超时必须大于0: %d", cfg.Site.WaitTimeoutSeconds)
	}
	if cfg.Output.CsvPath == "" {
		return fmt.Errorf("CSV输出路径不能为空")
	}
	return nil
}
