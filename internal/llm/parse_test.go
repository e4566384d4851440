package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopicSuggestions_MarkerFormat(t *testing.T) {
	reply := strings.Join([]string{
		"Here are some trending topics:",
		"TOPIC: Why remote teams ship faster",
		"TOPIC: The hidden cost of technical debt",
		"Some commentary the model added.",
		"TOPIC: AI copilots in code review",
	}, "\n")

	topics := parseTopicSuggestions(reply)

	require.Len(t, topics, 3)
	assert.Equal(t, "Why remote teams ship faster", topics[0].Topic)
	assert.Equal(t, "Google Search", topics[0].SourceTitle)
	assert.Equal(t, "https://www.google.com/search?q=Why+remote+teams+ship+faster", topics[0].SourceURL)
	assert.Equal(t, "AI copilots in code review", topics[2].Topic)
}

func TestParseTopicSuggestions_EmptyMarkerSkipped(t *testing.T) {
	topics := parseTopicSuggestions("TOPIC:\nTOPIC: A real topic about leadership")

	require.Len(t, topics, 1)
	assert.Equal(t, "A real topic about leadership", topics[0].Topic)
}

func TestParseTopicSuggestions_FallbackNumberedList(t *testing.T) {
	reply := strings.Join([]string{
		"1. The future of developer productivity tools",
		"2. Building in public as a growth strategy",
		"- ok",
		"3. Lessons from scaling a two person startup",
	}, "\n")

	topics := parseTopicSuggestions(reply)

	require.Len(t, topics, 3, "short lines are dropped")
	assert.Equal(t, "The future of developer productivity tools", topics[0].Topic)
	assert.Equal(t, "#", topics[0].SourceURL)
	assert.Equal(t, "AI Generated", topics[0].SourceTitle)
}

func TestParseTopicSuggestions_FallbackExcludesTopicMentions(t *testing.T) {
	reply := "Here are the topic suggestions you asked for:\nGrowth loops for B2B SaaS products"

	topics := parseTopicSuggestions(reply)

	require.Len(t, topics, 1)
	assert.Equal(t, "Growth loops for B2B SaaS products", topics[0].Topic)
}

func TestParseTopicSuggestions_CappedAtTen(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "TOPIC: Suggestion number %d about engineering culture\n", i)
	}

	topics := parseTopicSuggestions(b.String())

	assert.Len(t, topics, 10)
}

func TestParseTopicSuggestions_EmptyReply(t *testing.T) {
	assert.Empty(t, parseTopicSuggestions(""))
}
