package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// The prompt is fixed so every summary carries the same three sections and
// the sink file stays uniform.
const summaryPrompt = `You are a helpful assistant that creates comprehensive summaries of video transcriptions. Your summaries should be informative and well-structured, capturing both the key points and the deeper context.

Please provide a comprehensive summary of this video transcription in the following format:

## Key Highlights
- [3-5 bullet points of the most important takeaways]

## Main Points
- [Detailed bullet points covering the major topics and arguments]

## Detailed Summary
[A few paragraphs providing a narrative summary of the content]

Transcription:
---
%s
---`

// Summarize sends the transcript to Gemini and returns the markdown summary.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}
	return s.callGemini(ctx, buildPrompt(transcript))
}

func buildPrompt(transcript string) string {
	return fmt.Sprintf(summaryPrompt, transcript)
}

// callGemini performs the generation call, rotating API keys on 429 / quota
// errors so one exhausted key does not fail the job.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return strings.TrimSpace(text.String()), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
