// Package summary produces the daily AI briefing shown on the
// dashboard: a short, role-aware digest of the user's unread activity.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/eripro/connect/internal/models"
)

// Briefing is the structured digest returned to the client. The model
// is instructed to emit exactly this shape as JSON.
type Briefing struct {
	Title          string   `json:"title"`
	SummaryPoints  []string `json:"summaryPoints"`
	Recommendation string   `json:"recommendation"`
}

// completer is the slice of the OpenAI client the service needs.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Service struct {
	client completer
	model  string
	group  singleflight.Group
	log    *zap.Logger
}

// NewService builds the briefing service. An empty API key leaves the
// client nil and every request gets the offline briefing; the rest of
// the platform works without credentials.
func NewService(apiKey string, log *zap.Logger) *Service {
	s := &Service{model: openai.GPT4oMini, log: log}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// Generate returns a briefing for the user's current unread state.
// Concurrent requests for the same user are collapsed into a single
// upstream call; callers never receive an error, only a degraded
// briefing, so a flaky upstream cannot break the dashboard.
func (s *Service) Generate(ctx context.Context, user *models.User, unread map[string]int) *Briefing {
	if s.client == nil {
		return offlineBriefing()
	}

	key := fmt.Sprintf("user-%d", user.ID)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.generate(ctx, user, unread)
	})
	if err != nil {
		s.log.Warn("briefing generation failed", zap.Int64("user", user.ID), zap.Error(err))
		return errorBriefing()
	}
	return v.(*Briefing)
}

func (s *Service) generate(ctx context.Context, user *models.User, unread map[string]int) (*Briefing, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(user, unread)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: empty response")
	}

	var briefing Briefing
	raw := stripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &briefing); err != nil {
		return nil, fmt.Errorf("decode briefing: %w", err)
	}
	if briefing.Title == "" || len(briefing.SummaryPoints) == 0 {
		return nil, fmt.Errorf("decode briefing: incomplete payload")
	}
	return &briefing, nil
}

const systemPrompt = `You are an executive assistant inside a professional networking platform.
Produce a concise daily briefing as a JSON object with exactly these fields:
"title" (string), "summaryPoints" (array of 3 to 4 short strings), and
"recommendation" (one actionable sentence). Respond with JSON only.`

// userPrompt renders the user's role, department and unread activity
// into the model's input. Channels are listed in a stable order so
// identical states produce identical prompts.
func userPrompt(user *models.User, unread map[string]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user is a %s in the %s department.\n", user.Role, user.Department)

	if len(unread) == 0 {
		b.WriteString("They have no unread messages. Congratulate them on a clear inbox and suggest a proactive next step for their role.")
		return b.String()
	}

	ids := make([]string, 0, len(unread))
	for id := range unread {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b.WriteString("Unread messages per channel:\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "- %s: %d\n", id, unread[id])
	}
	b.WriteString("Summarize what deserves their attention first, tailored to their role.")
	return b.String()
}

// stripFences removes a surrounding markdown code fence, which some
// models emit even when asked for raw JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func offlineBriefing() *Briefing {
	return &Briefing{
		Title: "AI Assistant Offline",
		SummaryPoints: []string{
			"The AI briefing service is not configured.",
			"Your channels and messages are fully available.",
			"Check back once an API key has been set up.",
		},
		Recommendation: "Review your unread channels manually from the sidebar.",
	}
}

func errorBriefing() *Briefing {
	return &Briefing{
		Title: "Error Generating Summary",
		SummaryPoints: []string{
			"The AI assistant could not produce your briefing right now.",
			"This is usually temporary.",
		},
		Recommendation: "Try again in a few minutes.",
	}
}
