package public

import (
	"fmt"
)

// ParseError 表示无法识别的比赛名
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FetchError 表示下载页面失败。Status 为 0 时表示传输层错误
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("get %s error, status code = %d", e.URL, e.Status)
	}
	return fmt.Sprintf("get %s error: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IOError 表示写文件或提交归档失败
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s error: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
