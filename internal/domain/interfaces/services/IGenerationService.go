package Iservices

import (
	"context"

	"sales-assistant/internal/domain/entities"
)

type IGenerationService interface {
	GenerateAgenda(ctx context.Context, transcript *entities.Transcript, account *entities.Account) (string, error)
	GenerateFollowUp(ctx context.Context, transcript *entities.Transcript, account *entities.Account) (string, error)
}
