package repository

import (
	"context"

	"skyhunt-service/internal/domain/entity"
)

// WhatsappRepository defines the interface for WhatsApp operations
type WhatsappRepository interface {
	SendPayload(ctx context.Context, payload *entity.Payload) (string, error)
}
