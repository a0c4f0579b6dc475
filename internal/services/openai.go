package services

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"samscout/contract-agent/internal/models"
)

type openAIGenerator struct {
	client    *openai.Client
	modelName string
	prompts   *PromptBuilder
}

func NewOpenAIGenerator(apiKey string) ProposalGenerator {
	return &openAIGenerator{
		client:    openai.NewClient(apiKey),
		modelName: openai.GPT4,
		prompts:   NewPromptBuilder(),
	}
}

// Name implements ProposalGenerator.
func (o *openAIGenerator) Name() string {
	return "GPT-4"
}

// GenerateProposal implements ProposalGenerator.
func (o *openAIGenerator) GenerateProposal(ctx context.Context, opportunity models.Opportunity, profile *models.CompanyProfile) models.ProposalResult {
	prompt := o.prompts.BuildProposalPrompt(opportunity, profile)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analystSystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 1024,
	})
	if err != nil {
		return proposalFailure("OpenAI", err)
	}
	if len(resp.Choices) == 0 {
		return proposalFailure("OpenAI", errors.New("no choices in response"))
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return proposalFailure("OpenAI", errors.New("empty completion content"))
	}

	return SplitProposalText(content)
}
