package atcoder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/oi-archive/samples/plugin/public"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newArchiveServer(t *testing.T, pages map[string]string) (*httptest.Server, *[]string) {
	t.Helper()
	var visited []string
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		visited = append(visited, r.URL.Path)
		mu.Unlock()
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)
	return srv, &visited
}

func TestCrawl(t *testing.T) {
	pages := map[string]string{}
	for _, diff := range []string{"a", "b", "c", "d", "e", "f"} {
		pages["/contests/abc126/tasks/abc126_"+diff] = renderPage(
			part{"Sample Input 1", diff + " in\n"},
			part{"Sample Output 1", diff + " out\n"},
		)
	}
	// d 题没有输出样例
	pages["/contests/abc126/tasks/abc126_d"] = renderPage(part{"Sample Input 1", "lonely\n"})

	srv, visited := newArchiveServer(t, pages)
	crawler := NewCrawler(public.NewFetcher(""), srv.URL)

	contest, err := crawler.Crawl(context.Background(), Kind{Family: ABC, Number: 126})
	require.NoError(t, err)
	require.Equal(t, Kind{Family: ABC, Number: 126}, contest.Kind)
	require.Len(t, contest.Problems, 6)
	require.Len(t, *visited, 6)

	for i, diff := range []string{"a", "b", "c", "d", "e", "f"} {
		require.Equal(t, diff, contest.Problems[i].Diff)
		require.Equal(t, "/contests/abc126/tasks/abc126_"+diff, (*visited)[i])
	}
	require.Empty(t, contest.Problems[3].Samples)
	require.Equal(t, []Sample{{Input: "e in\n", Output: "e out\n"}}, contest.Problems[4].Samples)
}

func TestCrawlStopsOnFetchError(t *testing.T) {
	pages := map[string]string{
		"/contests/arc058/tasks/arc058_c": renderPage(part{"Sample Input 1", "1\n"}, part{"Sample Output 1", "2\n"}),
	}
	srv, visited := newArchiveServer(t, pages)
	crawler := NewCrawler(public.NewFetcher(""), srv.URL)

	contest, err := crawler.Crawl(context.Background(), Kind{Family: ARC, Number: 58})
	require.Error(t, err)
	require.Nil(t, contest)
	require.Equal(t, []string{"/contests/arc058/tasks/arc058_c", "/contests/arc058/tasks/arc058_d"}, *visited)

	var fetchErr *public.FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusNotFound, fetchErr.Status)
	require.Equal(t, srv.URL+"/contests/arc058/tasks/arc058_d", fetchErr.URL)
}

type fetcherFunc func(ctx context.Context, url string) (string, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

func TestCrawlWrapsForeignErrors(t *testing.T) {
	crawler := NewCrawler(fetcherFunc(func(context.Context, string) (string, error) {
		return "", errors.New("connection reset")
	}), "")

	_, err := crawler.Crawl(context.Background(), Kind{Family: ABC, Number: 1})
	var fetchErr *public.FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, "https://atcoder.jp/contests/abc001/tasks/abc001_a", fetchErr.URL)
	require.Contains(t, err.Error(), "connection reset")
}

func TestContestFileList(t *testing.T) {
	crawler := NewCrawler(fetcherFunc(func(_ context.Context, url string) (string, error) {
		if strings.HasSuffix(url, "_a") {
			return renderPage(part{"入力例 1", "3\n5\n"}, part{"出力例 1", "8\n"}), nil
		}
		return renderPage(), nil
	}), "")

	contest, err := crawler.Crawl(context.Background(), Kind{Family: ABC, Number: 100})
	require.NoError(t, err)

	fileList, err := contest.FileList("contest.json")
	require.NoError(t, err)
	require.Equal(t, []string{"contest.json"}, fileList.Paths())
	require.JSONEq(t, `{
		"kind": {"ABC": 100},
		"problem": [
			{"diff": "a", "expected_in_out": [["3\n5\n", "8\n"]]},
			{"diff": "b", "expected_in_out": []},
			{"diff": "c", "expected_in_out": []},
			{"diff": "d", "expected_in_out": []}
		]
	}`, string(fileList["contest.json"]))

	var decoded Contest
	require.NoError(t, json.Unmarshal(fileList["contest.json"], &decoded))
	require.Equal(t, *contest, decoded)
}

func TestCrawlEmptyContest(t *testing.T) {
	crawler := NewCrawler(fetcherFunc(func(context.Context, string) (string, error) {
		t.Fatal("no page should be requested")
		return "", nil
	}), "")

	contest, err := crawler.Crawl(context.Background(), Kind{Family: AGC, Number: 0})
	require.NoError(t, err)
	require.Empty(t, contest.Problems)
}
