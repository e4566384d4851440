package services

import (
	"fmt"
	"regexp"
	"strings"
)

type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// QualityCheck is one heuristic rule applied to a generated post.
type QualityCheck struct {
	Label   string      `json:"label"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// QualityReport scores a post against the LinkedIn engagement heuristics
// the generation prompt targets. Score is the percentage of passing checks.
type QualityReport struct {
	Score  int            `json:"score"`
	Checks []QualityCheck `json:"checks"`
}

var (
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	emojiRe          = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)
	hashtagRe        = regexp.MustCompile(`#\w+`)
)

// AnalyzePost runs the quality heuristics over post content.
func AnalyzePost(content string) *QualityReport {
	var checks []QualityCheck

	// Character count (optimal: 1,242-2,500)
	charCount := len([]rune(content))
	checks = append(checks, QualityCheck{
		Label:   "Character Count",
		Status:  rangeStatus(charCount, 1200, 2500, 800, 3000),
		Message: fmt.Sprintf("%d characters (optimal: 1,242-2,500)", charCount),
	})

	// Paragraph count (optimal: 8-12)
	paragraphs := splitParagraphs(content)
	checks = append(checks, QualityCheck{
		Label:   "Paragraphs",
		Status:  rangeStatus(len(paragraphs), 8, 12, 5, 15),
		Message: fmt.Sprintf("%d paragraphs (optimal: 8-12)", len(paragraphs)),
	})

	// Word count
	wordCount := len(strings.Fields(content))
	checks = append(checks, QualityCheck{
		Label:   "Word Count",
		Status:  rangeStatus(wordCount, 200, 350, 150, 400),
		Message: fmt.Sprintf("%d words (optimal: 200-350)", wordCount),
	})

	// Emoji count (optimal: 1-8); too many or none are both warnings
	emojiCount := len(emojiRe.FindAllString(content, -1))
	emojiStatus := CheckWarning
	if emojiCount >= 1 && emojiCount <= 8 {
		emojiStatus = CheckPass
	}
	checks = append(checks, QualityCheck{
		Label:   "Strategic Emojis",
		Status:  emojiStatus,
		Message: fmt.Sprintf("%d emojis (optimal: 1-8)", emojiCount),
	})

	// Hashtags reduce reach; any at all is a failure
	hashtags := hashtagRe.FindAllString(content, -1)
	hashtagCheck := QualityCheck{
		Label:   "No Hashtags",
		Status:  CheckPass,
		Message: "No hashtags (good! they reduce reach by 81%)",
	}
	if len(hashtags) > 0 {
		hashtagCheck.Status = CheckFail
		hashtagCheck.Message = fmt.Sprintf("%d hashtags found (remove them!)", len(hashtags))
	}
	checks = append(checks, hashtagCheck)

	// Question ending
	lastParagraph := ""
	if len(paragraphs) > 0 {
		lastParagraph = paragraphs[len(paragraphs)-1]
	}
	questionCheck := QualityCheck{
		Label:   "Ends with Question",
		Status:  CheckWarning,
		Message: "Consider ending with a question",
	}
	if strings.Contains(lastParagraph, "?") {
		questionCheck.Status = CheckPass
		questionCheck.Message = "Ends with a question (72% better engagement)"
	}
	checks = append(checks, questionCheck)

	passCount := 0
	for _, check := range checks {
		if check.Status == CheckPass {
			passCount++
		}
	}

	return &QualityReport{
		Score:  int(float64(passCount)/float64(len(checks))*100 + 0.5),
		Checks: checks,
	}
}

func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range paragraphSplitRe.Split(content, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func rangeStatus(n, passLow, passHigh, warnLow, warnHigh int) CheckStatus {
	switch {
	case n >= passLow && n <= passHigh:
		return CheckPass
	case n >= warnLow && n <= warnHigh:
		return CheckWarning
	default:
		return CheckFail
	}
}
