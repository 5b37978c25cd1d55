package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// AiCollections groups the conversation collections handed to the service.
type AiCollections struct {
	Sessions repository.Collection[domain.AiSession]
	Messages repository.Collection[domain.AiMessage]
}

// AiService manages assistant conversation records.
type AiService struct {
	sessions resource[domain.AiSession, dto.AiSessionCreate, dto.AiSessionUpdate]
	messages resource[domain.AiMessage, dto.AiMessageCreate, dto.AiMessageUpdate]
}

// NewAiService wires the conversation collections.
func NewAiService(cols AiCollections, val *validation.Validator, log *slog.Logger) *AiService {
	return &AiService{
		sessions: newResource[domain.AiSession, dto.AiSessionCreate, dto.AiSessionUpdate](
			repository.ColAiSessions, cols.Sessions, val, log),
		messages: newResource[domain.AiMessage, dto.AiMessageCreate, dto.AiMessageUpdate](
			repository.ColAiMessages, cols.Messages, val, log),
	}
}

// CreateSession validates in and opens a conversation.
func (s *AiService) CreateSession(ctx context.Context, in dto.AiSessionCreate) (*domain.AiSession, error) {
	return s.sessions.create(ctx, in.UserID, in)
}

// UpdateSession applies the supplied fields to a conversation.
func (s *AiService) UpdateSession(ctx context.Context, in dto.AiSessionUpdate) (*domain.AiSession, error) {
	return s.sessions.update(ctx, in.UserID, in.ID, in)
}

// GetSession returns one conversation of the user.
func (s *AiService) GetSession(ctx context.Context, userID, id string) (*domain.AiSession, error) {
	return s.sessions.get(ctx, userID, id)
}

// ListSessions returns a page of the user's conversations.
func (s *AiService) ListSessions(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.AiSession], error) {
	return s.sessions.list(ctx, userID, page)
}

// DeleteSession removes one conversation of the user.
func (s *AiService) DeleteSession(ctx context.Context, userID, id string) error {
	return s.sessions.delete(ctx, userID, id)
}

// CreateMessage validates in and appends a message.
func (s *AiService) CreateMessage(ctx context.Context, in dto.AiMessageCreate) (*domain.AiMessage, error) {
	return s.messages.create(ctx, in.UserID, in)
}

// UpdateMessage applies the supplied fields to a message.
func (s *AiService) UpdateMessage(ctx context.Context, in dto.AiMessageUpdate) (*domain.AiMessage, error) {
	return s.messages.update(ctx, in.UserID, in.ID, in)
}

// GetMessage returns one message of the user.
func (s *AiService) GetMessage(ctx context.Context, userID, id string) (*domain.AiMessage, error) {
	return s.messages.get(ctx, userID, id)
}

// ListMessages returns a page of the user's messages.
func (s *AiService) ListMessages(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.AiMessage], error) {
	return s.messages.list(ctx, userID, page)
}

// DeleteMessage removes one message of the user.
func (s *AiService) DeleteMessage(ctx context.Context, userID, id string) error {
	return s.messages.delete(ctx, userID, id)
}
