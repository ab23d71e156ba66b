// Package reportfile reads report definitions: which report to draw and the tallies to
// draw it from. Definitions are YAML; JSON bodies parse the same way.
//
//	report: ratings
//	title: Classroom Experience Ratings
//	responses:
//	  1 (Poor): 26
//	  2 (Below Average): 36
//	  3 (Average): 78
//	  4 (Good): 142
//	  5 (Excellent): 47
//
// The order of the responses mapping is the category order.
package reportfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// Definition is a parsed report file.
type Definition struct {
	Report      report.Kind
	Title       string
	Responses   survey.ResponseSet
	Respondents int
	Groups      []layout.Group
	Palette     []string
	Explode     []float64
	Footer      string
	Size        layout.Size
}

type rawDefinition struct {
	Report      string         `yaml:"report"`
	Title       string         `yaml:"title"`
	Respondents int            `yaml:"respondents"`
	Responses   yaml.Node      `yaml:"responses"`
	Groups      []layout.Group `yaml:"groups"`
	Palette     []string       `yaml:"palette"`
	Explode     []float64      `yaml:"explode"`
	Footer      string         `yaml:"footer"`
	Width       int            `yaml:"width"`
	Height      int            `yaml:"height"`
}

// ErrNoResponses is returned when a definition has no responses section.
var ErrNoResponses = errors.New("report definition has no responses")

// Parse decodes a definition. The report name is required unless fallback is
// non-empty.
func Parse(data []byte, fallback report.Kind) (Definition, error) {
	var raw rawDefinition
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Definition{}, fmt.Errorf("decode report definition: %w", err)
	}
	name := raw.Report
	if name == "" {
		name = string(fallback)
	}
	kind, err := report.ParseKind(name)
	if err != nil {
		return Definition{}, err
	}
	rs, err := responseSet(&raw.Responses)
	if err != nil {
		return Definition{}, err
	}
	if raw.Respondents < 0 {
		return Definition{}, fmt.Errorf("respondents must not be negative, got %d", raw.Respondents)
	}
	return Definition{
		Report:      kind,
		Title:       raw.Title,
		Responses:   rs,
		Respondents: raw.Respondents,
		Groups:      raw.Groups,
		Palette:     raw.Palette,
		Explode:     raw.Explode,
		Footer:      raw.Footer,
		Size:        layout.Size{Width: raw.Width, Height: raw.Height},
	}, nil
}

// ParseResponses decodes only the responses section of a definition. The report name
// and the presentation fields may be present but are not checked.
func ParseResponses(data []byte) (survey.ResponseSet, error) {
	var raw struct {
		Responses yaml.Node `yaml:"responses"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return survey.ResponseSet{}, fmt.Errorf("decode responses: %w", err)
	}
	return responseSet(&raw.Responses)
}

func responseSet(n *yaml.Node) (survey.ResponseSet, error) {
	responses, err := decodeResponses(n)
	if err != nil {
		return survey.ResponseSet{}, err
	}
	return survey.NewResponseSet(responses...)
}

// Load reads and parses a definition file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read report definition: %w", err)
	}
	def, err := Parse(data, "")
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// decodeResponses accepts an ordered mapping of label to count, or a sequence of
// {label, count} items.
func decodeResponses(n *yaml.Node) ([]survey.Response, error) {
	switch n.Kind {
	case 0:
		return nil, ErrNoResponses
	case yaml.MappingNode:
		out := make([]survey.Response, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			count, err := decodeCount(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: count for %q: %w", v.Line, k.Value, err)
			}
			out = append(out, survey.Response{Label: k.Value, Count: count})
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]survey.Response, 0, len(n.Content))
		for _, item := range n.Content {
			r, err := decodeItem(item)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", item.Line, err)
			}
			out = append(out, r)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: responses must be a mapping or a list", n.Line)
}

// decodeItem reads one {label, count} list entry.
func decodeItem(item *yaml.Node) (survey.Response, error) {
	if item.Kind != yaml.MappingNode {
		return survey.Response{}, fmt.Errorf("response must be a {label, count} mapping")
	}
	var (
		r        survey.Response
		hasCount bool
	)
	for i := 0; i+1 < len(item.Content); i += 2 {
		k, v := item.Content[i], item.Content[i+1]
		switch k.Value {
		case "label":
			if err := v.Decode(&r.Label); err != nil {
				return survey.Response{}, fmt.Errorf("label: %w", err)
			}
		case "count":
			count, err := decodeCount(v)
			if err != nil {
				return survey.Response{}, fmt.Errorf("count for %q: %w", r.Label, err)
			}
			r.Count, hasCount = count, true
		default:
			return survey.Response{}, fmt.Errorf("unknown field %q", k.Value)
		}
	}
	if !hasCount {
		return survey.Response{}, fmt.Errorf("response %q has no count", r.Label)
	}
	return r, nil
}

// decodeCount accepts only integer scalars. yaml.v3 would otherwise truncate 2.9
// into 2 when decoding into an int.
func decodeCount(v *yaml.Node) (int, error) {
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!int" {
		return 0, fmt.Errorf("count must be a whole number, got %q", v.Value)
	}
	var count int
	if err := v.Decode(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Input converts the definition into report input.
func (d Definition) Input() report.Input {
	return report.Input{
		Title:       d.Title,
		Responses:   d.Responses,
		Respondents: d.Respondents,
		Groups:      d.Groups,
		Palette:     d.Palette,
		Explode:     d.Explode,
		Size:        d.Size,
		Footer:      d.Footer,
	}
}

// Generate builds the definition's report.
func (d Definition) Generate() (layout.PanelLayout, error) {
	return report.Generate(d.Report, d.Input())
}
