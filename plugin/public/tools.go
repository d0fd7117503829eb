/*
 爬虫通用工具包
*/
package public

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent 部分题库会拒绝默认的 Go UA
const DefaultUserAgent = `Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36`

// Fetcher 是 resty.Client 的简单封装。失败时不重试，直接返回 *FetchError
type Fetcher struct {
	client *resty.Client
}

func NewFetcher(userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetLogger(restyLogger{})
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		slog.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		slog.DebugContext(
			res.Request.Context(), "request finished",
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"bytes", len(res.Body()),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.ErrorContext(req.Context(), "request failed", "method", req.Method, "url", req.URL, "err", err)
	})
	return &Fetcher{client: client}
}

// Download 用于下载一个 url 中的内容，同时返回响应的 Content-Type
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	if !res.IsSuccess() {
		return nil, "", &FetchError{
			URL:    url,
			Status: res.StatusCode(),
			Err:    errors.Errorf("unexpected status %s", res.Status()),
		}
	}
	return res.Body(), res.Header().Get("Content-Type"), nil
}

// Fetch 下载页面并按 Content-Type 声明的编码转换为 UTF-8 文本
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, contentType, err := f.Download(ctx, url)
	if err != nil {
		return "", err
	}
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "decode body")}
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "decode body")}
	}
	return string(text), nil
}

// GetDocument 返回输入 url 的 goquery.Document
func (f *Fetcher) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	text, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(text)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return doc, nil
}

// ParseDocument 将 HTML 文本解析为可用 CSS 选择器查询的文档树
func ParseDocument(text string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	return doc, nil
}

var urlRule = regexp.MustCompile(`(https?|ftp|file)://[-A-Za-z0-9+&@#/%?=~_|!:,.;]+[-A-Za-z0-9+&@#/%=~_|]`)

// 判断是否为一个合法的完整 url
func IsUrl(url string) bool {
	return urlRule.MatchString(url)
}

type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	slog.Warn(fmt.Sprintf(format, v...))
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...))
}
