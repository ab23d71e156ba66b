package reportfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

const ratingsYAML = `
report: ratings
title: Classroom Experience
responses:
  1 (Poor): 26
  2 (Below Average): 36
  3 (Average): 78
  4 (Good): 142
  5 (Excellent): 47
explode: [0.1, 0, 0, 0, 0]
footer: Spring term
width: 1200
height: 900
`

func TestParseKeepsOrder(t *testing.T) {
	def, err := Parse([]byte(ratingsYAML), "")
	require.NoError(t, err)
	assert.Equal(t, report.Ratings, def.Report)
	assert.Equal(t, "Classroom Experience", def.Title)
	assert.Equal(t, []string{"1 (Poor)", "2 (Below Average)", "3 (Average)", "4 (Good)", "5 (Excellent)"}, def.Responses.Labels())
	assert.Equal(t, 329, def.Responses.Total())
	assert.Equal(t, 1200, def.Size.Width)

	out, err := def.Generate()
	require.NoError(t, err)
	assert.Equal(t, "Classroom Experience (n=329)", out.Title)
	assert.Equal(t, 0.1, out.Panels[1].Spec.Series[0].Offset)
}

func TestParseReversedMappingReorders(t *testing.T) {
	def, err := Parse([]byte("report: adoption\nresponses:\n  No: 38\n  Yes: 329\n"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"No", "Yes"}, def.Responses.Labels())
}

func TestParseJSONBody(t *testing.T) {
	body := `{"report":"subjects","respondents":1000,"responses":{"English":737,"Math":84}}`
	def, err := Parse([]byte(body), "")
	require.NoError(t, err)
	assert.Equal(t, report.Subjects, def.Report)
	assert.Equal(t, 1000, def.Respondents)
	assert.Equal(t, []string{"English", "Math"}, def.Responses.Labels())
}

func TestParseListForm(t *testing.T) {
	src := "responses:\n  - label: Yes\n    count: 329\n  - label: No\n    count: 38\n"
	def, err := Parse([]byte(src), report.Adoption)
	require.NoError(t, err)
	assert.Equal(t, report.Adoption, def.Report)
	assert.Equal(t, 367, def.Responses.Total())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad count":     "report: adoption\nresponses:\n  Yes: many\n",
		"no report":     "responses:\n  Yes: 1\n",
		"no answers":    "report: adoption\n",
		"scalar":        "report: adoption\nresponses: 12\n",
		"bad yaml":      "report: [adoption\n",
		"fractional":    "report: adoption\nresponses:\n  Yes: 1.5\n",
		"negative":      "report: adoption\nrespondents: -1\nresponses:\n  Yes: 1\n",
		"radar chart":   "report: radar\nresponses:\n  Yes: 1\n",
		"list fraction": "report: adoption\nresponses:\n  - {label: Yes, count: 1.5}\n",
		"list no count": "report: adoption\nresponses:\n  - {label: Yes}\n",
		"list extra":    "report: adoption\nresponses:\n  - {label: Yes, count: 1, colour: red}\n",
		"quoted count":  "report: adoption\nresponses:\n  Yes: \"12\"\n",
	}
	for name, src := range cases {
		_, err := Parse([]byte(src), "")
		assert.Error(t, err, name)
	}

	_, err := Parse([]byte("report: adoption\n"), "")
	assert.ErrorIs(t, err, ErrNoResponses)

	_, err = Parse([]byte("report: adoption\nresponses:\n  Yes: 1\n  Yes: 2\n"), "")
	var dle *survey.DuplicateLabelError
	assert.True(t, errors.As(err, &dle))

	_, err = Parse([]byte("report: adoption\nresponses:\n  Yes: -3\n"), "")
	var ice *survey.InvalidCountError
	assert.True(t, errors.As(err, &ice))

	_, err = Parse([]byte("report: radar\nresponses:\n  Yes: 1\n"), "")
	var ure *report.UnsupportedReportError
	assert.True(t, errors.As(err, &ure))
}

func TestParseRejectsFractionalCounts(t *testing.T) {
	body := `{"report":"adoption","responses":{"Yes":2.9,"No":0.5}}`
	def, err := Parse([]byte(body), "")
	require.Error(t, err, "accepted counts %v", def.Responses.Counts())
	assert.Contains(t, err.Error(), "whole number")

	_, err = Parse([]byte(`{"report":"adoption","responses":[{"label":"Yes","count":2.9}]}`), "")
	assert.Error(t, err)

	def, err = Parse([]byte(`{"report":"adoption","responses":{"Yes":3,"No":1}}`), "")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, def.Responses.Counts())
}

func TestParseResponses(t *testing.T) {
	rs, err := ParseResponses([]byte("title: ignored\nresponses:\n  No: 38\n  Yes: 329\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"No", "Yes"}, rs.Labels())
	assert.Equal(t, 367, rs.Total())

	_, err = ParseResponses([]byte(`{"report":"radar"}`))
	assert.ErrorIs(t, err, ErrNoResponses)

	_, err = ParseResponses([]byte(`{"responses":{"Yes":1.5}}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ratings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ratingsYAML), 0o644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, report.Ratings, def.Report)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
