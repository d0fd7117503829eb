package atcoder

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/oi-archive/samples/plugin/public"
	"golang.org/x/text/width"
)

var (
	inputLabels  = []string{"Input", "入力例"}
	outputLabels = []string{"Output", "出力例"}
)

// ExtractSamples 提取题面中的全部样例。
// 题面由若干 div.part 组成，样例所在的 part 形如 <section><h3>入力例 1</h3><pre>...</pre></section>。
// 输入和输出不一定相邻，中间可能夹着说明，所以先按编号分别收集，最后再配对
func ExtractSamples(doc *goquery.Document) []Sample {
	inputs := make(map[uint]string)
	outputs := make(map[uint]string)
	doc.Find("div.part").Each(func(_ int, part *goquery.Selection) {
		section := part.Find("section").First()
		h3 := section.Find("h3").First()
		pre := section.Find("pre").First()
		if h3.Length() == 0 || pre.Length() == 0 {
			return
		}
		heading := width.Narrow.String(h3.Text())
		switch {
		case containsAny(heading, inputLabels):
			if n, ok := sampleNumber(heading); ok {
				inputs[n] = pre.Text()
			}
		case containsAny(heading, outputLabels):
			if n, ok := sampleNumber(heading); ok {
				outputs[n] = pre.Text()
			}
		}
	})
	return pairSamples(inputs, outputs)
}

// ExtractSamplesFromHTML 同 ExtractSamples，输入为原始 HTML
func ExtractSamplesFromHTML(text string) ([]Sample, error) {
	doc, err := public.ParseDocument(text)
	if err != nil {
		return nil, err
	}
	return ExtractSamples(doc), nil
}

func containsAny(s string, labels []string) bool {
	for _, label := range labels {
		if strings.Contains(s, label) {
			return true
		}
	}
	return false
}

// 入力例 1 or Sample Input 1 -> 1
func sampleNumber(heading string) (uint, bool) {
	fields := strings.Fields(heading)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(fields[len(fields)-1], 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func pairSamples(inputs, outputs map[uint]string) []Sample {
	in := mapset.NewThreadUnsafeSet[uint]()
	for n := range inputs {
		in.Add(n)
	}
	out := mapset.NewThreadUnsafeSet[uint]()
	for n := range outputs {
		out.Add(n)
	}

	if orphans := in.SymmetricDifference(out); orphans.Cardinality() > 0 {
		ordinals := orphans.ToSlice()
		slices.Sort(ordinals)
		slog.Debug("dropping unmatched samples", "ordinals", ordinals)
	}

	matched := in.Intersect(out).ToSlice()
	slices.Sort(matched)
	samples := make([]Sample, 0, len(matched))
	for _, n := range matched {
		samples = append(samples, Sample{Input: inputs[n], Output: outputs[n]})
	}
	return samples
}
