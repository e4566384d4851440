package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkByLabel(t *testing.T, report *QualityReport, label string) QualityCheck {
	t.Helper()
	for _, c := range report.Checks {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("no check with label %q", label)
	return QualityCheck{}
}

// wellFormedPost builds a post that passes every heuristic: ten paragraphs,
// in-range character and word counts, a couple of emojis, no hashtags, and a
// closing question.
func wellFormedPost() string {
	paragraph := strings.Repeat("Consistent effort beats sporadic brilliance every time. ", 4)
	var b strings.Builder
	b.WriteString("I made a mistake that cost me three clients. 🚀\n\n")
	for i := 0; i < 8; i++ {
		b.WriteString(paragraph)
		b.WriteString("\n\n")
	}
	b.WriteString("What lesson took you the longest to learn? 💡")
	return b.String()
}

func TestAnalyzePost_WellFormedPostScoresFull(t *testing.T) {
	report := AnalyzePost(wellFormedPost())

	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Checks, 6)
	for _, c := range report.Checks {
		assert.Equal(t, CheckPass, c.Status, c.Label)
	}
}

func TestAnalyzePost_HashtagsFail(t *testing.T) {
	report := AnalyzePost(wellFormedPost() + "\n\n#growth #mindset")

	check := checkByLabel(t, report, "No Hashtags")
	assert.Equal(t, CheckFail, check.Status)
	assert.Contains(t, check.Message, "2 hashtags")
}

func TestAnalyzePost_ShortPost(t *testing.T) {
	report := AnalyzePost("Just shipped a thing.")

	assert.Equal(t, CheckFail, checkByLabel(t, report, "Character Count").Status)
	assert.Equal(t, CheckFail, checkByLabel(t, report, "Paragraphs").Status)
	assert.Equal(t, CheckFail, checkByLabel(t, report, "Word Count").Status)
	assert.Equal(t, CheckWarning, checkByLabel(t, report, "Strategic Emojis").Status)
	assert.Equal(t, CheckWarning, checkByLabel(t, report, "Ends with Question").Status)
	// Only the hashtag check passes, 1 of 6 rounds to 17.
	assert.Equal(t, 17, report.Score)
}

func TestAnalyzePost_QuestionEnding(t *testing.T) {
	withQuestion := AnalyzePost("First paragraph here.\n\nWhat do you think?")
	assert.Equal(t, CheckPass, checkByLabel(t, withQuestion, "Ends with Question").Status)

	withoutQuestion := AnalyzePost("What do you think?\n\nA flat closing statement.")
	assert.Equal(t, CheckWarning, checkByLabel(t, withoutQuestion, "Ends with Question").Status)
}

func TestAnalyzePost_NearMissesWarn(t *testing.T) {
	// Six paragraphs is below the 8-12 sweet spot but inside the 5-15 band.
	post := strings.TrimSuffix(strings.Repeat("A single short paragraph of filler text here.\n\n", 6), "\n\n")
	report := AnalyzePost(post)

	assert.Equal(t, CheckWarning, checkByLabel(t, report, "Paragraphs").Status)
}

func TestAnalyzePost_TooManyEmojis(t *testing.T) {
	report := AnalyzePost(wellFormedPost() + strings.Repeat(" 🔥", 10))

	assert.Equal(t, CheckWarning, checkByLabel(t, report, "Strategic Emojis").Status)
}

func TestSplitParagraphs_IgnoresBlankRuns(t *testing.T) {
	paragraphs := splitParagraphs("one\n\n\n\ntwo\n\n   \n\nthree")
	assert.Equal(t, []string{"one", "two", "three"}, paragraphs)
}
