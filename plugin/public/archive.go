package public

import (
	"time"

	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
)

// Archive 是保存爬取结果的 git 仓库，每次更新提交一次
type Archive struct {
	path   string
	repo   *git.Repository
	name   string
	email  string
	nowFun func() time.Time
}

// OpenArchive 打开 path 处的仓库，不存在时初始化一个新仓库
func OpenArchive(path, name, email string) (*Archive, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(path, false)
	}
	if err != nil {
		return nil, &IOError{Path: path, Err: errors.Wrap(err, "open archive")}
	}
	return &Archive{path: path, repo: repo, name: name, email: email, nowFun: time.Now}, nil
}

// Commit 把 fileList 写入工作区并提交，返回新提交的 hash
func (a *Archive) Commit(fileList FileList, message string) (plumbing.Hash, error) {
	wt, err := a.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, &IOError{Path: a.path, Err: err}
	}
	for _, path := range fileList.Paths() {
		if err := util.WriteFile(wt.Filesystem, path, fileList[path], 0644); err != nil {
			return plumbing.ZeroHash, &IOError{Path: path, Err: errors.Wrap(err, "write worktree")}
		}
		if _, err := wt.Add(path); err != nil {
			return plumbing.ZeroHash, &IOError{Path: path, Err: errors.Wrap(err, "git add")}
		}
	}
	sig := &object.Signature{
		Name:  a.name,
		Email: a.email,
		When:  a.nowFun(),
	}
	hash, err := wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return plumbing.ZeroHash, &IOError{Path: a.path, Err: errors.Wrap(err, "git commit")}
	}
	return hash, nil
}
