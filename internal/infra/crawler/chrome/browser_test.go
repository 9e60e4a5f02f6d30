package chrome

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/LouYuanbo1/counselcrawler/internal/config"
	"github.com/stretchr/testify/require"
)

const listPageHTML = `<html><body><div class="list_table"><table><tbody>
<tr><td>1</td><td>금융</td><td>제목A</td><td>2024-01-01</td><td>10</td></tr>
</tbody></table></div></body></html>`

// chromeBin 返回PATH中可用的Chrome,找不到时跳过测试
func chromeBin(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("PATH中没有Chrome/Chromium")
	return ""
}

func newListServer(t *testing.T) *httptest.Server {
	t.Helper()
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.URL.Query().Get("pageIndex") == "1" {
			io.WriteString(w, listPageHTML)
			return
		}
		io.WriteString(w, `<html><body><p>게시물이 없습니다.</p></body></html>`)
	}))
	t.Cleanup(testServer.Close)
	return testServer
}

func assertWaitFor(t *testing.T, cc ChromeCrawler, serverUrl string) {
	t.Helper()
	defer cc.Close()

	require.NoError(t, cc.InitAndNavigate(serverUrl+"?pageIndex=1"))
	found, err := cc.WaitFor("div.list_table table", 5*time.Second)
	require.NoError(t, err)
	require.True(t, found)
	html, err := cc.HTML()
	require.NoError(t, err)
	require.Contains(t, html, "제목A")

	require.NoError(t, cc.InitAndNavigate(serverUrl+"?pageIndex=2"))
	found, err = cc.WaitFor("div.list_table table", 500*time.Millisecond)
	require.NoError(t, err)
	require.False(t, found)
}

func TestChromedpWaitForTimeoutIsNotFound(t *testing.T) {
	bin := chromeBin(t)
	testServer := newListServer(t)

	cfg := config.DefaultConfig()
	cfg.Chromedp.Bin = bin
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	cc, err := InitChromedpCrawler(ctx, cfg)
	require.NoError(t, err)

	assertWaitFor(t, cc, testServer.URL)
}

func TestRodWaitForTimeoutIsNotFound(t *testing.T) {
	bin := chromeBin(t)
	testServer := newListServer(t)

	cfg := config.DefaultConfig()
	cfg.Rod.Bin = bin
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	cc, err := InitRodCrawler(ctx, cfg)
	require.NoError(t, err)

	assertWaitFor(t, cc, testServer.URL)
}
