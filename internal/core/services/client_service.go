package services

import (
	"context"
	"errors"
	"fmt"

	"paydesk/internal/adapters/persistence/models"
	"paydesk/internal/adapters/persistence/repositories"
	"paydesk/internal/core/domain"
	"paydesk/internal/pkg/validation"

	"gorm.io/gorm"
)

// ClientService handles client business logic
type ClientService struct {
	clientRepo  repositories.ClientRepository
	paymentRepo repositories.PaymentRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repositories.ClientRepository, paymentRepo repositories.PaymentRepository) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

// CreateClientInput represents create client input
type CreateClientInput struct {
	FirstName   string `json:"first_name" validate:"required,alpha,max=50"`
	LastName    string `json:"last_name" validate:"required,alpha,max=50"`
	AddrLine1   string `json:"addr_line1" validate:"required,addrline,max=100"`
	AddrLine2   string `json:"addr_line2,omitempty" validate:"omitempty,addrline,max=100"`
	AddrLine3   string `json:"addr_line3,omitempty" validate:"omitempty,addrline,max=100"`
	Postcode    string `json:"postcode" validate:"required,alphanum,max=10"`
	Country     string `json:"country" validate:"required,country"`
	PhoneNumber string `json:"phone_number" validate:"required,phone,max=15"`
	BankAcctNo  string `json:"bank_acct_no,omitempty" validate:"omitempty,max=20"`
}

// UpdateClientInput represents partial client update input; nil fields keep
// their current value
type UpdateClientInput struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	AddrLine1   *string `json:"addr_line1,omitempty"`
	AddrLine2   *string `json:"addr_line2,omitempty"`
	AddrLine3   *string `json:"addr_line3,omitempty"`
	Postcode    *string `json:"postcode,omitempty"`
	Country     *string `json:"country,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	BankAcctNo  *string `json:"bank_acct_no,omitempty"`
}

// Create validates a candidate client and persists it. Every violated
// constraint is collected into a single ValidationError; nothing is written
// on failure.
func (s *ClientService) Create(ctx context.Context, input *CreateClientInput) (*models.Client, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	client := &models.Client{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		AddrLine1:   input.AddrLine1,
		AddrLine2:   input.AddrLine2,
		AddrLine3:   input.AddrLine3,
		Postcode:    input.Postcode,
		Country:     input.Country,
		PhoneNumber: input.PhoneNumber,
		BankAcctNo:  input.BankAcctNo,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetByID gets a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityClient, id)
		}
		return nil, err
	}
	return client, nil
}

// List lists all clients
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.clientRepo.List(ctx)
}

// Update applies the supplied fields to an existing client. The merged
// record is re-validated with the same rules as Create before anything is
// written.
func (s *ClientService) Update(ctx context.Context, id uint, input *UpdateClientInput) (*models.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyClientUpdate(client, input)

	merged := &CreateClientInput{
		FirstName:   client.FirstName,
		LastName:    client.LastName,
		AddrLine1:   client.AddrLine1,
		AddrLine2:   client.AddrLine2,
		AddrLine3:   client.AddrLine3,
		Postcode:    client.Postcode,
		Country:     client.Country,
		PhoneNumber: client.PhoneNumber,
		BankAcctNo:  client.BankAcctNo,
	}
	if fields := validation.Struct(merged); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// Delete removes a client by ID. A client that still has payments
// referencing it is never deleted; the caller must delete those payments
// first (reject-if-referenced policy).
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	count, err := s.paymentRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ConflictError{
			Message: fmt.Sprintf("client %d still has %d payment(s); delete them first", id, count),
		}
	}

	deleted, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError(domain.EntityClient, id)
	}
	return nil
}

func applyClientUpdate(client *models.Client, input *UpdateClientInput) {
	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.AddrLine1 != nil {
		client.AddrLine1 = *input.AddrLine1
	}
	if input.AddrLine2 != nil {
		client.AddrLine2 = *input.AddrLine2
	}
	if input.AddrLine3 != nil {
		client.AddrLine3 = *input.AddrLine3
	}
	if input.Postcode != nil {
		client.Postcode = *input.Postcode
	}
	if input.Country != nil {
		client.Country = *input.Country
	}
	if input.PhoneNumber != nil {
		client.PhoneNumber = *input.PhoneNumber
	}
	if input.BankAcctNo != nil {
		client.BankAcctNo = *input.BankAcctNo
	}
}
