package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
)

const (
	summaryModel       = "chatgpt-4o-latest"
	answerModel        = openai.GPT4o
	requestTemperature = 0.3
	summaryMaxTokens   = 200
	answerMaxTokens    = 300
)

const summarySystemPrompt = `You are a crypto token analyst assistant. Your job is to provide clear, concise summaries of cryptocurrency tokens.

YOUR JOB:
- Give a 3-5 sentence summary.
- Use plain, beginner-friendly language.
- Include major red flags (missing description, low volume, low holder count, etc.).
- Do NOT invent facts - comment only on the data provided.
- If some data is missing (description, roadmap, team, utility, etc.), say so clearly.
- Output only the summary.`

const answerSystemPrompt = `You are a crypto assistant. You will receive a summary of a token and a user's question.
- Never mention the word "summary" or refer to the existence of a summary. The user does not need to know about it. Write as if you are directly analyzing raw data.
- ONLY answer using the provided material. If information is missing, clearly explain which details are missing (e.g., token utility, team info, roadmap) instead of saying "not enough info".
- When possible, explain what could happen based on the current facts, using logical reasoning and common industry knowledge - but don't speculate wildly.
- Respond in a helpful, direct tone.`

// Summarizer derives coin prose through the OpenAI chat-completions API.
// It implements domain.Summarizer. Provider failures surface as errors, never
// as sentinel text in the returned string.
type Summarizer struct {
	client *openai.Client
}

// NewSummarizer creates a Summarizer from an API key.
func NewSummarizer(apiKey string) *Summarizer {
	return &Summarizer{client: openai.NewClient(apiKey)}
}

// NewSummarizerWithClient wires a pre-built client, mainly for tests.
func NewSummarizerWithClient(client *openai.Client) *Summarizer {
	return &Summarizer{client: client}
}

var _ domain.Summarizer = (*Summarizer)(nil)

// Summarize turns a structured coin prompt into a short plain-language summary.
func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, summaryModel, summaryMaxTokens, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

// Answer answers a user question strictly from previously derived summary text.
// The summary and the question travel as separate user messages so the model
// sees them as distinct inputs.
func (s *Summarizer) Answer(ctx context.Context, summary, question string) (string, error) {
	return s.complete(ctx, answerModel, answerMaxTokens, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: answerSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: "Here is the token summary:\n\n" + summary},
		{Role: openai.ChatMessageRoleUser, Content: "User Question: " + question},
	})
}

func (s *Summarizer) complete(ctx context.Context, model string, maxTokens int, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: requestTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}
