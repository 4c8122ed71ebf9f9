package repositories

import (
	"context"

	"paydesk/internal/adapters/persistence/models"
	"paydesk/internal/core/domain"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID gets a payment by ID with its client resolved
func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Preload("Client").Where("payment_id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List lists all payments with their clients resolved, in insertion order
func (r *paymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).Preload("Client").Order("payment_id").Find(&payments).Error
	return payments, err
}

// Update updates a payment
func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete removes a payment, reporting whether a row was actually deleted
func (r *paymentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByClient counts payments referencing a client
func (r *paymentRepository) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("client_id = ?", clientID).Count(&count).Error
	return count, err
}

// CountByStatus counts payments in a given status
func (r *paymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ApproveIfPending flips status Pending → Approved as a single conditional
// update. Two concurrent calls can both succeed at the caller level but only
// one ever matches a Pending row.
func (r *paymentRepository) ApproveIfPending(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("payment_id = ? AND status = ?", id, string(domain.StatusPending)).
		Update("status", string(domain.StatusApproved))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
