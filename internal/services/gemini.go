package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"samscout/contract-agent/internal/models"
)

// ProposalGenerator produces a summary and bid outline for one opportunity.
// Implementations absorb every provider failure and return a renderable
// error placeholder instead.
type ProposalGenerator interface {
	Name() string
	GenerateProposal(ctx context.Context, opportunity models.Opportunity, profile *models.CompanyProfile) models.ProposalResult
}

type geminiGenerator struct {
	client    *genai.Client
	modelName string
	prompts   *PromptBuilder
}

func NewGeminiGenerator(apiKey string) (ProposalGenerator, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:    client,
		modelName: "gemini-2.5-flash",
		prompts:   NewPromptBuilder(),
	}, nil
}

// Name implements ProposalGenerator.
func (g *geminiGenerator) Name() string {
	return "Google Gemini"
}

// GenerateProposal implements ProposalGenerator.
func (g *geminiGenerator) GenerateProposal(ctx context.Context, opportunity models.Opportunity, profile *models.CompanyProfile) models.ProposalResult {
	prompt := g.prompts.BuildProposalPrompt(opportunity, profile)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(analystSystemInstruction, genai.RoleUser),
		MaxOutputTokens:   1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return proposalFailure("Google AI", err)
	}
	if resp == nil {
		return proposalFailure("Google AI", errors.New("no response generated"))
	}

	text := resp.Text()
	if text == "" {
		return proposalFailure("Google AI", errors.New("no text content in response"))
	}

	return SplitProposalText(text)
}
