package atcoder

import (
	"fmt"
	"strings"
)

// Problems 返回比赛的题号列表。分界点是 AtCoder 历史上调整题目数量的比赛编号，需原样保留
func (k Kind) Problems() []string {
	switch k.Family {
	case ABC:
		if k.Number <= 125 {
			return []string{"a", "b", "c", "d"}
		}
		return []string{"a", "b", "c", "d", "e", "f"}
	case ARC:
		if k.Number <= 57 {
			return []string{"a", "b", "c", "d"}
		} else if k.Number <= 103 {
			// ABC 同时举办时 ARC 从 C 题开始编号
			return []string{"c", "d", "e", "f"}
		}
		return []string{"a", "b", "c", "d"}
	case AGC:
		problems := []string{}
		for i := uint(0); i < k.Number; i++ {
			problems = append(problems, fmt.Sprintf("%s%d", k.Family, i))
		}
		return problems
	}
	return nil
}

// Task 是比赛中的一道题
type Task struct {
	Kind Kind
	Diff string
}

func (k Kind) Tasks() []Task {
	problems := k.Problems()
	tasks := make([]Task, 0, len(problems))
	for _, diff := range problems {
		tasks = append(tasks, Task{Kind: k, Diff: diff})
	}
	return tasks
}

// URL 返回题面地址，base 形如 https://atcoder.jp
func (t Task) URL(base string) string {
	name := t.Kind.Name()
	return fmt.Sprintf("%s/contests/%s/tasks/%s_%s", strings.TrimRight(base, "/"), name, name, t.Diff)
}
