package public

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// FileList 表示一次更新要写出的文件列表，key 为相对路径，value 为文件内容
type FileList map[string][]byte

// Paths 返回排好序的文件路径
func (fl FileList) Paths() []string {
	paths := make([]string, 0, len(fl))
	for path := range fl {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// WriteFiles 将文件列表写入 root 目录下，已存在的文件会被覆盖
func WriteFiles(root string, fileList FileList) error {
	for _, path := range fileList.Paths() {
		full := filepath.Join(root, filepath.FromSlash(path))
		if dir := filepath.Dir(full); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return &IOError{Path: full, Err: errors.Wrap(err, "create directory")}
			}
		}
		if err := os.WriteFile(full, fileList[path], 0644); err != nil {
			return &IOError{Path: full, Err: err}
		}
	}
	return nil
}
