package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/tweetproxy/internal/clients"
)

const (
	openAIModel        = openai.GPT4oMini
	anthropicModel     = "claude-3-5-haiku-latest"
	anthropicMaxTokens = 1024
)

var ErrProviderNotConfigured = errors.New("[Analysis] LLM provider is not configured")

const analysisSystemMessage = `You analyze batches of tweets for a social media dashboard.

You will receive a numbered list of tweets. Summarize the recurring themes, the overall tone, and anything notable about how the topics are discussed. Ground every observation in the tweets themselves; do not speculate about the author beyond what the text supports.`

const chatSystemMessage = `You answer questions about a batch of tweets for a social media dashboard.

You will receive a numbered list of tweets, possibly a transcript of the conversation so far, and the user's latest message. Answer the message using only the tweets as source material. If the tweets do not contain the answer, say so plainly.`

const contextPromptHeader = `Give one short paragraph of background context for the topics discussed in the tweets below. Mention only widely known facts that help a reader understand the references; do not analyze sentiment or speculate.`

// AnalyzeTweets summarizes a batch of tweets via OpenAI and, when the
// secondary provider is configured, fetches a background-context paragraph
// from Anthropic. A missing OpenAI key is ErrProviderNotConfigured; a missing
// Anthropic key degrades to an empty context string with a logged warning.
func AnalyzeTweets(ctx context.Context, tweets []string, concise bool) (string, string, error) {
	oc, err := clients.GetOpenAIClient()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrProviderNotConfigured, err)
	}

	resp, err := oc.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    openAIModel,
		Messages: buildAnalysisMessages(tweets, concise),
	})
	if err != nil {
		return "", "", fmt.Errorf("[Analysis] completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", "", errors.New("[Analysis] completion returned no choices")
	}
	analysisText := strings.TrimSpace(resp.Choices[0].Message.Content)

	contextText, err := fetchContext(ctx, tweets)
	if err != nil {
		slog.Warn("[Analysis] Context provider unavailable, returning analysis only",
			slog.String("error", err.Error()))
		return analysisText, "", nil
	}

	return analysisText, contextText, nil
}

// ChatAboutTweets answers a user message about a batch of tweets, threading
// any prior conversation transcript into the prompt.
func ChatAboutTweets(ctx context.Context, tweets []string, chatHistory, userMessage string) (string, error) {
	oc, err := clients.GetOpenAIClient()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderNotConfigured, err)
	}

	resp, err := oc.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    openAIModel,
		Messages: buildChatMessages(tweets, chatHistory, userMessage),
	})
	if err != nil {
		return "", fmt.Errorf("[Analysis] chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("[Analysis] chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func fetchContext(ctx context.Context, tweets []string) (string, error) {
	ac, err := clients.GetAnthropicClient()
	if err != nil {
		return "", err
	}

	msg, err := ac.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(anthropicModel),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildContextPrompt(tweets))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("[Analysis] context request failed: %w", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			out.WriteString(variant.Text)
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func buildAnalysisMessages(tweets []string, concise bool) []openai.ChatCompletionMessage {
	prompt := "Analyze the following tweets:\n\n" + numberTweets(tweets)
	if concise {
		prompt += "\n\nKeep the analysis to three sentences or fewer."
	}

	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: analysisSystemMessage},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}
}

func buildChatMessages(tweets []string, chatHistory, userMessage string) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: chatSystemMessage},
		{Role: openai.ChatMessageRoleUser, Content: "Here are the tweets:\n\n" + numberTweets(tweets)},
	}
	if chatHistory != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: "Conversation so far:\n" + chatHistory,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	return messages
}

func buildContextPrompt(tweets []string) string {
	return contextPromptHeader + "\n\n" + numberTweets(tweets)
}

func numberTweets(tweets []string) string {
	var b strings.Builder
	for i, tweet := range tweets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tweet)
	}
	return b.String()
}
