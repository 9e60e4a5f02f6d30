package param

import "time"

// Scrape 列表爬取参数
type Scrape struct {
	// MaxPages 爬取 1..MaxPages 页,小于等于0时不启动浏览器
	MaxPages int `json:"max_pages"`
	// SleepSeconds 每次导航后无条件等待的秒数
	SleepSeconds float64 `json:"sleep_seconds"`
}

func DefaultScrape() *Scrape {
	return &Scrape{
		MaxPages:     2,
		SleepSeconds: 2,
	}
}

// SleepDuration 负数按0处理
func (s *Scrape) SleepDuration() time.Duration {
	if s.SleepSeconds <= 0 {
		return 0
	}
	return time.Duration(s.SleepSeconds * float64(time.Second))
}
