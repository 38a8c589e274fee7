package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/interview-generator/internal/models"
)

type CreditRepository interface {
	// GetBalance returns a zero balance for owners without a ledger row.
	GetBalance(ctx context.Context, ownerID uuid.UUID) (*models.CreditBalance, error)
	Grant(ctx context.Context, ownerID uuid.UUID, amount int) (*models.CreditBalance, error)
	Deduct(ctx context.Context, ownerID uuid.UUID, amount int) error
}

type creditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{db: db}
}

// GetBalance implements CreditRepository.
func (r *creditRepository) GetBalance(ctx context.Context, ownerID uuid.UUID) (*models.CreditBalance, error) {
	var balance models.CreditBalance
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.CreditBalance{OwnerID: ownerID}, nil
		}
		return nil, fmt.Errorf("failed to read credit balance: %w", err)
	}
	return &balance, nil
}

// Grant implements CreditRepository.
func (r *creditRepository) Grant(ctx context.Context, ownerID uuid.UUID, amount int) (*models.CreditBalance, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("grant amount must be positive, got %d", amount)
	}

	row := &models.CreditBalance{
		OwnerID:   ownerID,
		Remaining: amount,
		UpdatedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"remaining":  gorm.Expr("credit_balances.remaining + ?", amount),
			"updated_at": time.Now(),
		}),
	}).Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to grant credits: %w", err)
	}

	return r.GetBalance(ctx, ownerID)
}

// Deduct implements CreditRepository.
func (r *creditRepository) Deduct(ctx context.Context, ownerID uuid.UUID, amount int) error {
	return deductCredits(r.db.WithContext(ctx), ownerID, amount)
}

func deductCredits(db *gorm.DB, ownerID uuid.UUID, amount int) error {
	result := db.Model(&models.CreditBalance{}).
		Where("owner_id = ? AND remaining >= ?", ownerID, amount).
		Updates(map[string]interface{}{
			"remaining":  gorm.Expr("remaining - ?", amount),
			"total_used": gorm.Expr("total_used + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to deduct credits: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}
