// Package gemini implements the transaction classifier port on Google's
// Gemini models.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/service"
)

// DefaultModel balances speed and cost for batch categorization.
const DefaultModel = "gemini-1.5-flash"

// Classifier proposes categories for transactions via Gemini.
type Classifier struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// New dials the Gemini API. model falls back to DefaultModel when empty.
func New(ctx context.Context, apiKey, model string, log *slog.Logger) (*Classifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{client: client, model: model, log: log}, nil
}

// Classify implements service.TransactionClassifier.
func (c *Classifier) Classify(ctx context.Context, txs []*domain.Transaction) (*service.ClassifierResult, error) {
	prompt := buildPrompt(txs)

	c.log.Debug("sending classification request", "model", c.model, "transactions", len(txs))
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generation: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model %s", c.model)
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			raw.WriteString(part.Text)
		}
	}
	text := stripFences(raw.String())

	var suggestions []service.Suggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}
	return &service.ClassifierResult{
		Model:       c.model,
		Raw:         text,
		Suggestions: suggestions,
	}, nil
}

func buildPrompt(txs []*domain.Transaction) string {
	var b strings.Builder
	b.WriteString("You are a personal-finance analyst. Categorize these bank transactions.\n")
	b.WriteString("Return a RAW JSON ARRAY of objects, no markdown formatting.\n")
	b.WriteString("Each object must have: 'transaction_id', 'category_id' ")
	b.WriteString("(one of: food, transport, housing, health, leisure, shopping, bills, salary, investment, transfer, other), ")
	b.WriteString("'merchant' (clean display name) and 'confidence' (0 to 1).\n\n")
	for _, t := range txs {
		fmt.Fprintf(&b, `{"transaction_id": %q, "description": %q, "merchant": %q, "amount_cents": %d, "type": %q}`+"\n",
			t.ID, t.Description, t.Merchant, t.Amount, t.Type)
	}
	return b.String()
}

// stripFences removes the ```json fences the model likes to add despite
// instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
