package services

import (
	"context"
	"errors"

	"paydesk/internal/adapters/persistence/models"
	"paydesk/internal/adapters/persistence/repositories"
	"paydesk/internal/core/domain"
	"paydesk/internal/pkg/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService handles payment business logic and owns the approval
// state machine
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	clientRepo  repositories.ClientRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository, clientRepo repositories.ClientRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
	}
}

// CreatePaymentInput represents create payment input
type CreatePaymentInput struct {
	ClientID      uint            `json:"client_id"`
	Amount        decimal.Decimal `json:"amount" validate:"-"`
	Currency      string          `json:"currency" validate:"required,currency"`
	RcptFirstName string          `json:"rcpt_first_name" validate:"required,alpha,max=50"`
	RcptLastName  string          `json:"rcpt_last_name" validate:"required,alpha,max=50"`
	RcptBankName  string          `json:"rcpt_bank_name" validate:"required,bankname,max=50"`
	RcptAcctNo    string          `json:"rcpt_acct_no" validate:"required,number,max=20"`
	Notes         string          `json:"notes,omitempty" validate:"omitempty,max=255"`
	Status        string          `json:"status,omitempty"`
}

// UpdatePaymentInput represents partial payment update input; nil fields
// keep their current value. Status changes are not accepted here; the
// approval transition goes through Approve.
type UpdatePaymentInput struct {
	ClientID      *uint            `json:"client_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	RcptFirstName *string          `json:"rcpt_first_name,omitempty"`
	RcptLastName  *string          `json:"rcpt_last_name,omitempty"`
	RcptBankName  *string          `json:"rcpt_bank_name,omitempty"`
	RcptAcctNo    *string          `json:"rcpt_acct_no,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

// Create resolves the referenced client, validates the candidate payment and
// persists it. The client must already exist; failure to resolve it is a
// ReferentialIntegrityError, not a field error. Nothing is written on any
// failure.
func (s *PaymentService) Create(ctx context.Context, input *CreatePaymentInput) (*models.Payment, error) {
	client, err := s.resolveClient(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	fields := validation.Struct(input)
	if msg := validation.Amount(input.Amount); msg != "" {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["amount"] = msg
	}
	if fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	// Pending is the state machine's initial state; an explicit Approved at
	// creation is accepted as-is, anything else is undefined.
	status := domain.StatusPending
	if input.Status != "" {
		status = domain.PaymentStatus(input.Status)
		if !status.IsValid() {
			return nil, &domain.TransitionError{From: string(domain.StatusPending), To: input.Status}
		}
	}

	payment := &models.Payment{
		ClientID:      client.ClientID,
		Amount:        input.Amount,
		Currency:      input.Currency,
		RcptFirstName: input.RcptFirstName,
		RcptLastName:  input.RcptLastName,
		RcptBankName:  input.RcptBankName,
		RcptAcctNo:    input.RcptAcctNo,
		Notes:         domain.SanitizeNotes(input.Notes),
		Status:        string(status),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	payment.Client = client
	return payment, nil
}

// GetByID gets a payment by ID together with its resolved client view
func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityPayment, id)
		}
		return nil, err
	}
	return payment, nil
}

// List lists all payments with their resolved client views
func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// Update applies the supplied fields to an existing payment. The client
// reference is only re-resolved when the caller actually changes it. Status
// may not be changed here: moving out of Approved, into an undefined value,
// or Pending→Approved (reserved for Approve) are all TransitionErrors.
func (s *PaymentService) Update(ctx context.Context, id uint, input *UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != payment.Status {
		return nil, &domain.TransitionError{From: payment.Status, To: *input.Status}
	}

	if input.ClientID != nil && *input.ClientID != payment.ClientID {
		client, err := s.resolveClient(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		payment.ClientID = client.ClientID
		payment.Client = client
	}

	applyPaymentUpdate(payment, input)

	merged := &CreatePaymentInput{
		ClientID:      payment.ClientID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		RcptFirstName: payment.RcptFirstName,
		RcptLastName:  payment.RcptLastName,
		RcptBankName:  payment.RcptBankName,
		RcptAcctNo:    payment.RcptAcctNo,
		Notes:         payment.Notes,
	}
	fields := validation.Struct(merged)
	if msg := validation.Amount(payment.Amount); msg != "" {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["amount"] = msg
	}
	if fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// Approve is the sole entry point for the Pending → Approved transition.
// The flip is a single conditional update, so concurrent calls on the same
// payment apply it exactly once. Approving an already-Approved payment is a
// successful no-op.
func (s *PaymentService) Approve(ctx context.Context, id uint) (*models.Payment, error) {
	approved, err := s.paymentRepo.ApproveIfPending(ctx, id)
	if err != nil {
		return nil, err
	}

	payment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !approved && payment.Status != string(domain.StatusApproved) {
		// Status column holds something outside the state machine; refuse to
		// report a transition that never happened.
		return nil, &domain.TransitionError{From: payment.Status, To: string(domain.StatusApproved)}
	}

	return payment, nil
}

// Delete removes a payment by ID
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError(domain.EntityPayment, id)
	}
	return nil
}

// resolveClient looks up the referenced client, translating a miss into a
// ReferentialIntegrityError
func (s *PaymentService) resolveClient(ctx context.Context, clientID uint) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.ReferentialIntegrityError{ClientID: clientID}
		}
		return nil, err
	}
	return client, nil
}

func applyPaymentUpdate(payment *models.Payment, input *UpdatePaymentInput) {
	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.Currency != nil {
		payment.Currency = *input.Currency
	}
	if input.RcptFirstName != nil {
		payment.RcptFirstName = *input.RcptFirstName
	}
	if input.RcptLastName != nil {
		payment.RcptLastName = *input.RcptLastName
	}
	if input.RcptBankName != nil {
		payment.RcptBankName = *input.RcptBankName
	}
	if input.RcptAcctNo != nil {
		payment.RcptAcctNo = *input.RcptAcctNo
	}
	if input.Notes != nil {
		payment.Notes = domain.SanitizeNotes(*input.Notes)
	}
}
