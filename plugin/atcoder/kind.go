package atcoder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/oi-archive/samples/plugin/public"
	"github.com/pkg/errors"
)

// Family 是比赛系列
type Family string

const (
	ABC Family = "ABC"
	ARC Family = "ARC"
	AGC Family = "AGC"
)

var families = []Family{ABC, ARC, AGC}

var ErrUnknownContest = errors.New("unknown contest")

// Code 返回 URL 中使用的小写代号
func (f Family) Code() string {
	return strings.ToLower(string(f))
}

func parseFamily(s string) (Family, bool) {
	for _, f := range families {
		if f.Code() == strings.ToLower(s) {
			return f, true
		}
	}
	return "", false
}

// Kind 是一场比赛的标识，例如 abc390 = Kind{ABC, 390}
type Kind struct {
	Family Family
	Number uint
}

// ParseKind 解析形如 "abc390"、" ARC195 " 的比赛名，不区分大小写
func ParseKind(text string) (Kind, error) {
	input := strings.TrimSpace(text)
	name := strings.ToLower(input)
	if len(name) < 4 {
		return Kind{}, &public.ParseError{Input: input, Err: errors.Wrap(ErrUnknownContest, "name too short")}
	}
	family, ok := parseFamily(name[:3])
	if !ok {
		return Kind{}, &public.ParseError{Input: input, Err: errors.Wrapf(ErrUnknownContest, "unknown family %q", name[:3])}
	}
	number, err := strconv.ParseUint(name[3:], 10, strconv.IntSize)
	if err != nil {
		return Kind{}, &public.ParseError{Input: input, Err: errors.Wrap(ErrUnknownContest, err.Error())}
	}
	return Kind{Family: family, Number: uint(number)}, nil
}

// Name 返回比赛在 URL 中的名字，编号至少补齐到三位
func (k Kind) Name() string {
	return fmt.Sprintf("%s%03d", k.Family.Code(), k.Number)
}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[Family]uint{k.Family: k.Number})
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var m map[string]uint
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return errors.Errorf("kind must have exactly one family, got %d", len(m))
	}
	for tag, number := range m {
		family, ok := parseFamily(tag)
		if !ok || string(family) != tag {
			return errors.Wrapf(ErrUnknownContest, "unknown family %q", tag)
		}
		k.Family = family
		k.Number = number
	}
	return nil
}
