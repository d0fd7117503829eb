package atcoder

import (
	"context"
	"log/slog"

	"github.com/oi-archive/samples/plugin/public"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://atcoder.jp"

// Fetcher 下载一个页面并返回文本，*public.Fetcher 实现了它
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Crawler struct {
	fetcher Fetcher
	base    string
}

func NewCrawler(fetcher Fetcher, base string) *Crawler {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Crawler{fetcher: fetcher, base: base}
}

// Crawl 依次下载比赛的每道题并提取样例。任何一道题下载失败都会中止整个过程，不返回部分结果
func (c *Crawler) Crawl(ctx context.Context, kind Kind) (*Contest, error) {
	contest := &Contest{Kind: kind, Problems: make([]Problem, 0)}
	for _, task := range kind.Tasks() {
		url := task.URL(c.base)
		slog.DebugContext(ctx, "start getting problem", "diff", task.Diff, "url", url)
		text, err := c.fetcher.Fetch(ctx, url)
		if err != nil {
			var fetchErr *public.FetchError
			if !errors.As(err, &fetchErr) {
				err = &public.FetchError{URL: url, Err: err}
			}
			return nil, err
		}
		doc, err := public.ParseDocument(text)
		if err != nil {
			return nil, &public.FetchError{URL: url, Err: err}
		}
		samples := ExtractSamples(doc)
		slog.InfoContext(ctx, "got problem", "contest", kind.Name(), "diff", task.Diff, "samples", len(samples))
		contest.Problems = append(contest.Problems, Problem{Diff: task.Diff, Samples: samples})
	}
	return contest, nil
}
