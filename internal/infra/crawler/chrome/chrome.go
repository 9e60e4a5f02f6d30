package chrome

import "time"

// ChromeCrawler 浏览器会话,一次只打开一个页面
type ChromeCrawler interface {
	// InitAndNavigate 导航到指定URL并等待页面加载事件
	InitAndNavigate(url string) error
	// Sleep 无条件等待一段时间
	Sleep(d time.Duration) error
	// WaitFor 在timeout内等待selector对应的元素出现,超时返回false而不是错误
	WaitFor(selector string, timeout time.Duration) (bool, error)
	// HTML 返回当前渲染后的完整文档
	HTML() (string, error)
	// Close 关闭浏览器,重复调用无副作用
	Close()
}
