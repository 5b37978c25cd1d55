package dto

import "github.com/meucofre/meucofre/pkg/domain"

// AiSessionCreate is the input for opening an assistant conversation.
type AiSessionCreate struct {
	UserID string `json:"userId" validate:"required"`
	Title  string `json:"title,omitempty" validate:"omitempty,min=1"`
}

// AiSessionUpdate is the partial-update input for a conversation.
type AiSessionUpdate struct {
	ID     string  `json:"id" validate:"required"`
	UserID string  `json:"userId" validate:"required"`
	Title  *string `json:"title,omitempty" validate:"omitnil,min=1"`
}

// AiMessageCreate is the input for appending a message to a conversation.
// CreatedAt is the client-side send time in milliseconds.
type AiMessageCreate struct {
	UserID    string             `json:"userId" validate:"required"`
	SessionID string             `json:"sessionId" validate:"required"`
	Role      domain.AiRole      `json:"role" validate:"required,oneof=user assistant tool"`
	Content   string             `json:"content" validate:"required,min=1"`
	CreatedAt domain.TimestampMS `json:"createdAt" validate:"required"`
}

// AiMessageUpdate is the partial-update input for a message.
type AiMessageUpdate struct {
	ID        string              `json:"id" validate:"required"`
	UserID    string              `json:"userId" validate:"required"`
	SessionID *string             `json:"sessionId,omitempty" validate:"omitnil,min=1"`
	Role      *domain.AiRole      `json:"role,omitempty" validate:"omitnil,oneof=user assistant tool"`
	Content   *string             `json:"content,omitempty" validate:"omitnil,min=1"`
	CreatedAt *domain.TimestampMS `json:"createdAt,omitempty"`
}
