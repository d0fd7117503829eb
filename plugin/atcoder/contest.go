package atcoder

import (
	"encoding/json"

	"github.com/oi-archive/samples/plugin/public"
	"github.com/pkg/errors"
)

// Sample 是一组样例，JSON 中编码为 [input, output]
type Sample struct {
	Input  string
	Output string
}

func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{s.Input, s.Output})
}

func (s *Sample) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("sample must be an [input, output] pair, got %d elements", len(pair))
	}
	s.Input, s.Output = pair[0], pair[1]
	return nil
}

type Problem struct {
	Diff    string   `json:"diff"`
	Samples []Sample `json:"expected_in_out"`
}

type Contest struct {
	Kind     Kind      `json:"kind"`
	Problems []Problem `json:"problem"`
}

// FileList 把比赛序列化为以 name 为文件名的文件列表
func (c *Contest) FileList(name string) (public.FileList, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode contest")
	}
	return public.FileList{name: b}, nil
}
