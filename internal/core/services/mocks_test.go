package services

import (
	"context"
	"sort"
	"sync"

	"paydesk/internal/adapters/persistence/models"
	"paydesk/internal/core/domain"

	"gorm.io/gorm"
)

// mockClientRepository is an in-memory ClientRepository. It hands out copies
// so callers cannot mutate stored records without going through Update, the
// same way a real database behaves.
type mockClientRepository struct {
	mu      sync.Mutex
	clients map[uint]models.Client
	nextID  uint
}

func newMockClientRepository() *mockClientRepository {
	return &mockClientRepository{clients: make(map[uint]models.Client)}
}

func (m *mockClientRepository) Create(ctx context.Context, client *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	client.ClientID = m.nextID
	m.clients[client.ClientID] = *client
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	client, ok := m.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &client, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Client, 0, len(m.clients))
	for id := range m.clients {
		client := m.clients[id]
		out = append(out, &client)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out, nil
}

func (m *mockClientRepository) Update(ctx context.Context, client *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ClientID] = *client
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[id]; !ok {
		return false, nil
	}
	delete(m.clients, id)
	return true, nil
}

func (m *mockClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.clients[id]
	return ok, nil
}

// mockPaymentRepository is an in-memory PaymentRepository with a CAS-style
// ApproveIfPending and a counter of effective transitions.
type mockPaymentRepository struct {
	mu          sync.Mutex
	payments    map[uint]models.Payment
	nextID      uint
	transitions int
}

func newMockPaymentRepository() *mockPaymentRepository {
	return &mockPaymentRepository{payments: make(map[uint]models.Payment)}
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	payment.PaymentID = m.nextID
	stored := *payment
	stored.Client = nil
	m.payments[payment.PaymentID] = stored
	return nil
}

func (m *mockPaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &payment, nil
}

func (m *mockPaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Payment, 0, len(m.payments))
	for id := range m.payments {
		payment := m.payments[id]
		out = append(out, &payment)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentID < out[j].PaymentID })
	return out, nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *payment
	stored.Client = nil
	m.payments[payment.PaymentID] = stored
	return nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return false, nil
	}
	delete(m.payments, id)
	return true, nil
}

func (m *mockPaymentRepository) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, p := range m.payments {
		if p.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

func (m *mockPaymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, p := range m.payments {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockPaymentRepository) ApproveIfPending(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok || payment.Status != string(domain.StatusPending) {
		return false, nil
	}
	payment.Status = string(domain.StatusApproved)
	m.payments[id] = payment
	m.transitions++
	return true, nil
}

func (m *mockPaymentRepository) transitionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions
}
