package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// classifyBatchLimit caps how many transactions one classification round
// sends to the model.
const classifyBatchLimit = 200

// TransactionService manages money movements and their automatic
// categorization.
type TransactionService struct {
	transactions resource[domain.Transaction, dto.TransactionCreate, dto.TransactionUpdate]
	classifier   TransactionClassifier
	log          *slog.Logger
}

// NewTransactionService wires the transaction collection. classifier may
// be nil when no LLM is configured.
func NewTransactionService(
	col repository.Collection[domain.Transaction],
	classifier TransactionClassifier,
	val *validation.Validator,
	log *slog.Logger,
) *TransactionService {
	return &TransactionService{
		transactions: newResource[domain.Transaction, dto.TransactionCreate, dto.TransactionUpdate](
			repository.ColTransactions, col, val, log),
		classifier: classifier,
		log:        log,
	}
}

// Create validates in and stores a new transaction.
func (s *TransactionService) Create(ctx context.Context, in dto.TransactionCreate) (*domain.Transaction, error) {
	return s.transactions.create(ctx, in.UserID, in)
}

// Update applies the supplied fields to an existing transaction.
func (s *TransactionService) Update(ctx context.Context, in dto.TransactionUpdate) (*domain.Transaction, error) {
	return s.transactions.update(ctx, in.UserID, in.ID, in)
}

// Get returns one transaction of the user.
func (s *TransactionService) Get(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	return s.transactions.get(ctx, userID, id)
}

// List returns a page of the user's transactions.
func (s *TransactionService) List(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.Transaction], error) {
	return s.transactions.list(ctx, userID, page)
}

// Delete removes one transaction of the user.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	return s.transactions.delete(ctx, userID, id)
}

// Classify sends the user's uncategorized transactions to the configured
// classifier and stamps the suggested category plus llm metadata on each
// match. It returns how many transactions were updated.
func (s *TransactionService) Classify(ctx context.Context, userID string) (int, error) {
	if s.classifier == nil {
		return 0, domain.ErrClassifierUnavailable
	}
	page, err := s.transactions.list(ctx, userID, dto.Pagination{Limit: classifyBatchLimit})
	if err != nil {
		return 0, err
	}
	var pending []*domain.Transaction
	for _, tx := range page.Items {
		if tx.CategoryID == "" && (tx.LLM == nil || !tx.LLM.Classified) {
			pending = append(pending, tx)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	res, err := s.classifier.Classify(ctx, pending)
	if err != nil {
		return 0, err
	}

	byID := make(map[string]*domain.Transaction, len(pending))
	for _, tx := range pending {
		byID[tx.ID] = tx
	}
	updated := 0
	for _, sg := range res.Suggestions {
		tx, ok := byID[sg.TransactionID]
		if !ok {
			s.log.Warn("classifier suggested unknown transaction", "id", sg.TransactionID)
			continue
		}
		confidence := sg.Confidence
		changes := map[string]any{
			"categoryId": sg.CategoryID,
			"llm": domain.LLMInfo{
				Classified: true,
				Model:      res.Model,
				Confidence: &confidence,
				Raw:        res.Raw,
			},
		}
		if sg.Merchant != "" && tx.Merchant == "" {
			changes["merchant"] = sg.Merchant
		}
		if err := s.transactions.col.Patch(ctx, userID, tx.ID, changes); err != nil {
			return updated, err
		}
		updated++
	}
	s.log.Info("transactions classified", "pending", len(pending), "updated", updated, "model", res.Model)
	return updated, nil
}
