package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// MaxTranscriptChars bounds the transcript embedded in the blog prompt.
const MaxTranscriptChars = 8000

const blogPromptTemplate = `
Convert this transcript into an SEO blog post.

TITLE: %s

TRANSCRIPT:
%s
`

// contentModel is the part of *genai.GenerativeModel the service uses.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	client *genai.Client
	model  contentModel
	log    *zap.Logger
}

func NewGeminiService(apiKey, modelName string, log *zap.Logger) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
		log:    log,
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// GenerateBlog asks the model for an SEO blog post built from the transcript.
// The model output is returned as-is, even when empty.
func (s *GeminiService) GenerateBlog(ctx context.Context, transcript, title string) (string, error) {
	prompt := BuildBlogPrompt(transcript, title)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.Error("Gemini ERROR", zap.Error(err))
		return "", &GenerationError{Message: err.Error()}
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			s.log.Warn("Gemini stopped early",
				zap.Int("candidate", i),
				zap.String("finish_reason", cand.FinishReason.String()),
			)
		}
	}

	return extractText(resp), nil
}

// BuildBlogPrompt embeds the title and at most MaxTranscriptChars characters
// of the transcript. The cut is not word aligned.
func BuildBlogPrompt(transcript, title string) string {
	return fmt.Sprintf(blogPromptTemplate, title, truncateChars(transcript, MaxTranscriptChars))
}

func truncateChars(s string, n int) string {
	if len(s) <= n || utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for pos := range s {
		if count == n {
			return s[:pos]
		}
		count++
	}
	return s
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
