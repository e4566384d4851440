package llm

import (
	"net/url"
	"strings"
)

const maxSuggestions = 10

// parseTopicSuggestions extracts topics from a model reply. Lines carrying
// the TOPIC: marker are the primary format; when none are present the whole
// reply is re-scanned with a lenient fallback that strips leading bullet and
// number characters and keeps any line longer than ten characters that does
// not itself mention TOPIC.
func parseTopicSuggestions(text string) []TopicSuggestion {
	lines := strings.Split(text, "\n")
	var topics []TopicSuggestion

	for _, line := range lines {
		if !strings.Contains(line, "TOPIC:") {
			continue
		}
		topic := strings.TrimSpace(line[strings.Index(line, "TOPIC:")+len("TOPIC:"):])
		if topic == "" {
			continue
		}
		topics = append(topics, TopicSuggestion{
			Topic:       topic,
			SourceURL:   "https://www.google.com/search?q=" + url.QueryEscape(topic),
			SourceTitle: "Google Search",
		})
	}

	if len(topics) == 0 {
		for _, line := range lines {
			cleaned := strings.TrimSpace(strings.TrimLeft(line, "0123456789-.* "))
			if len(cleaned) > 10 && !strings.Contains(strings.ToUpper(cleaned), "TOPIC") {
				topics = append(topics, TopicSuggestion{
					Topic:       cleaned,
					SourceURL:   "#",
					SourceTitle: "AI Generated",
				})
			}
		}
	}

	if len(topics) > maxSuggestions {
		topics = topics[:maxSuggestions]
	}
	return topics
}
