package service

import (
	"context"

	"github.com/meucofre/meucofre/pkg/domain"
)

// Suggestion is one proposed categorization for a transaction.
type Suggestion struct {
	TransactionID string  `json:"transaction_id"`
	CategoryID    string  `json:"category_id"`
	Merchant      string  `json:"merchant"`
	Confidence    float64 `json:"confidence"`
}

// ClassifierResult is the outcome of one classification round. Raw keeps
// the unparsed model output for auditing.
type ClassifierResult struct {
	Model       string
	Raw         string
	Suggestions []Suggestion
}

// TransactionClassifier proposes categories for uncategorized
// transactions. Implementations call out to an LLM.
type TransactionClassifier interface {
	Classify(ctx context.Context, txs []*domain.Transaction) (*ClassifierResult, error)
}
