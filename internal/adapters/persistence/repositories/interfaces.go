package repositories

import (
	"context"

	"paydesk/internal/adapters/persistence/models"
)

// ClientRepository defines client repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PaymentRepository defines payment repository interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uint) (bool, error)
	CountByClient(ctx context.Context, clientID uint) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// ApproveIfPending atomically flips status from Pending to Approved.
	// Returns false when no row was in Pending state (absent or already
	// approved).
	ApproveIfPending(ctx context.Context, id uint) (bool, error)
}
