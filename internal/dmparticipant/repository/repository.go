package repository

import (
	"context"

	"team-chat-platform/backend/internal/dmparticipant/domain"
)

// Repository defines persistence for DM participants.
type Repository interface {
	GetParticipantByID(ctx context.Context, id string) (*domain.Participant, error)
	GetParticipantByChannelAndUser(ctx context.Context, channelID, userID string) (*domain.Participant, error)
	ListParticipantsByChannel(ctx context.Context, channelID string) ([]*domain.Participant, error)
	CreateParticipant(ctx context.Context, p *domain.Participant) error
	DeleteParticipant(ctx context.Context, id string) error
	TouchLastRead(ctx context.Context, id string) error
}
