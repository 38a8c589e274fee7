package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/repositories"
)

type CreditService interface {
	GetCredits(ctx context.Context, ownerID uuid.UUID) (*models.CreditResponse, error)
	GrantCredits(ctx context.Context, ownerID uuid.UUID, amount int) (*models.CreditResponse, error)
}

type creditService struct {
	creditRepo repositories.CreditRepository
	log        *zap.Logger
}

func NewCreditService(creditRepo repositories.CreditRepository, log *zap.Logger) CreditService {
	return &creditService{creditRepo: creditRepo, log: log}
}

// GetCredits implements CreditService.
func (s *creditService) GetCredits(ctx context.Context, ownerID uuid.UUID) (*models.CreditResponse, error) {
	balance, err := s.creditRepo.GetBalance(ctx, ownerID)
	if err != nil {
		return nil, newError(KindInternal, "failed to read credit balance", err)
	}
	return &models.CreditResponse{Remaining: balance.Remaining, TotalUsed: balance.TotalUsed}, nil
}

// GrantCredits implements CreditService.
func (s *creditService) GrantCredits(ctx context.Context, ownerID uuid.UUID, amount int) (*models.CreditResponse, error) {
	if amount <= 0 {
		return nil, newError(KindValidation, "amount must be positive", nil)
	}

	balance, err := s.creditRepo.Grant(ctx, ownerID, amount)
	if err != nil {
		return nil, newError(KindInternal, "failed to grant credits", err)
	}

	s.log.Info("💳 Credits granted",
		zap.String("owner_id", ownerID.String()),
		zap.Int("amount", amount),
		zap.Int("remaining", balance.Remaining),
	)
	return &models.CreditResponse{Remaining: balance.Remaining, TotalUsed: balance.TotalUsed}, nil
}
