package llm

import (
	"context"
	"fmt"

	"postpilot-api/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// TopicSuggestion is one researched topic with its source attribution.
type TopicSuggestion struct {
	Topic       string `json:"topic"`
	SourceURL   string `json:"source_url"`
	SourceTitle string `json:"source_title"`
}

// Client talks to a generative AI provider through the OpenAI-compatible
// chat API (Gemini's compatibility endpoint by default).
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg *config.LLMConfig) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

// ResearchTopics asks the model for trending topics in a niche and parses
// the TOPIC: formatted reply. At most ten suggestions are returned.
func (c *Client) ResearchTopics(ctx context.Context, niche string) ([]TopicSuggestion, error) {
	prompt := fmt.Sprintf(`
Find 5 currently trending or highly relevant topics related to %q for today.
Focus on news, debates, or emerging trends that would make good LinkedIn content.

Format the output strictly as a list where each line is:
TOPIC: [The Topic Headline]

Do not add numbering or bullet points that aren't part of the format.
`, niche)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseTopicSuggestions(text), nil
}

// GeneratePost writes a LinkedIn post for an approved topic. The prompt
// encodes the 2025 LinkedIn algorithm guidance the quality analyzer checks
// against.
func (c *Client) GeneratePost(ctx context.Context, topic, niche string) (string, error) {
	prompt := fmt.Sprintf(`
You are an expert LinkedIn copywriter specializing in the %q industry.
Write a high-engagement LinkedIn post about: %q.

LINKEDIN 2025 ALGORITHM RULES:

LENGTH & STRUCTURE:
- Total length: 1,400-2,000 characters
- Write 8-12 paragraphs, each with 2-3 sentences
- Use short sentences (under 20 words each)
- Add ONE blank line between paragraphs (not after every sentence)
- Write at Grade 5-7 reading level (simple words)

HOOK (First paragraph - CRITICAL):
- Start with a BOLD or CONTRARIAN statement
- Challenge conventional wisdom or reveal something unexpected
- Make it punchy and scroll-stopping

BODY:
- Each paragraph should have 2-3 related sentences
- Use "you" to speak directly to the reader
- Include practical insights or lessons
- Add 3-5 emojis to highlight key points (not every paragraph)

ENDING:
- End with a SPECIFIC question that invites discussion
- Make it easy to answer with personal experience

AVOID:
- NO hashtags (they reduce reach)
- NO links in the post
- NO starting with "I"
- NO jargon or buzzwords

Write the post now:
`, niche, topic)

	return c.complete(ctx, prompt)
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
