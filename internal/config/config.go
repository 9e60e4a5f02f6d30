package config

import "time"

// 爬取引擎
const (
	EngineChromedp = "chromedp"
	EngineRod      = "rod"
	EngineColly    = "colly"
)

// Site 目标列表页相关的固定参数
type Site struct {
	ListUrl            string `json:"list_url"`
	PageParam          string `json:"page_param"`
	ContainerSelector  string `json:"container_selector"`
	WaitTimeoutSeconds int    `json:"wait_timeout_seconds"`
}

// WaitTimeout 等待结果表格出现的最长时间
func (s Site) WaitTimeout() time.Duration {
	return time.Duration(s.WaitTimeoutSeconds) * time.Second
}

type Config struct {
	Engine string `json:"engine"`
	Site   Site   `json:"site"`

	Chromedp struct {
		LifeTime           int    `json:"life_time"`
		UserDataDir        string `json:"user_data_dir"`
		Headless           bool   `json:"headless"`
		DisableDevShmUsage bool   `json:"disable_dev_shm_usage"`
		NoSandbox          bool   `json:"no_sandbox"`
		UserAgent          string `json:"user_agent"`
		Bin                string `json:"bin"`
	} `json:"chromedp"`

	Rod struct {
		Headless           bool   `json:"headless"`
		DisableDevShmUsage bool   `json:"disable_dev_shm_usage"`
		NoSandbox          bool   `json:"no_sandbox"`
		Leakless           bool   `json:"leakless"`
		Bin                string `json:"bin"`
	} `json:"rod"`

	Colly struct {
		UserAgent             string `json:"user_agent"`
		RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	} `json:"colly"`

	Output struct {
		CsvPath     string `json:"csv_path"`
		XlsxPath    string `json:"xlsx_path"`
		PreviewRows int    `json:"preview_rows"`
	} `json:"output"`
}

// DefaultConfig 返回中小企业咨询案例列表的默认配置
func DefaultConfig() *Config {
	var cfg Config
	cfg.Engine = EngineChromedp
	cfg.Site = Site{
		ListUrl:            "https://www.smes.go.kr/bizlink/counselingCase/counselingCaseList.do",
		PageParam:          "pageIndex",
		ContainerSelector:  "div.list_table table",
		WaitTimeoutSeconds: 5,
	}

	cfg.Chromedp.Headless = true
	cfg.Chromedp.NoSandbox = true
	cfg.Chromedp.DisableDevShmUsage = true

	cfg.Rod.Headless = true
	cfg.Rod.NoSandbox = true
	cfg.Rod.DisableDevShmUsage = true

	cfg.Colly.RequestTimeoutSeconds = 30

	cfg.Output.CsvPath = "smes_counseling_list.csv"
	cfg.Output.PreviewRows = 5
	return &cfg
}
