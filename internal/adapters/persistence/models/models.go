package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client represents the clients table
type Client struct {
	ClientID    uint      `gorm:"primaryKey;column:client_id" json:"client_id"`
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	AddrLine1   string    `gorm:"size:100;not null" json:"addr_line1"`
	AddrLine2   string    `gorm:"size:100" json:"addr_line2,omitempty"`
	AddrLine3   string    `gorm:"size:100" json:"addr_line3,omitempty"`
	Postcode    string    `gorm:"size:10;not null" json:"postcode"`
	Country     string    `gorm:"size:60;not null" json:"country"`
	PhoneNumber string    `gorm:"size:15;not null" json:"phone_number"`
	BankAcctNo  string    `gorm:"size:20" json:"bank_acct_no,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Payments []Payment `gorm:"foreignKey:ClientID" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

// ClientResponse DTO
type ClientResponse struct {
	ClientID    uint   `json:"client_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AddrLine1   string `json:"addr_line1"`
	AddrLine2   string `json:"addr_line2,omitempty"`
	AddrLine3   string `json:"addr_line3,omitempty"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phone_number"`
	BankAcctNo  string `json:"bank_acct_no,omitempty"`
}

func (c *Client) ToResponse() *ClientResponse {
	return &ClientResponse{
		ClientID:    c.ClientID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		AddrLine1:   c.AddrLine1,
		AddrLine2:   c.AddrLine2,
		AddrLine3:   c.AddrLine3,
		Postcode:    c.Postcode,
		Country:     c.Country,
		PhoneNumber: c.PhoneNumber,
		BankAcctNo:  c.BankAcctNo,
	}
}

// Payment represents the payments table
type Payment struct {
	PaymentID     uint            `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	ClientID      uint            `gorm:"not null;index" json:"client_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency      string          `gorm:"size:3;not null" json:"currency"`
	RcptFirstName string          `gorm:"size:50;not null" json:"rcpt_first_name"`
	RcptLastName  string          `gorm:"size:50;not null" json:"rcpt_last_name"`
	RcptBankName  string          `gorm:"size:50;not null" json:"rcpt_bank_name"`
	RcptAcctNo    string          `gorm:"size:20;not null" json:"rcpt_acct_no"`
	Notes         string          `gorm:"size:255" json:"notes,omitempty"`
	Status        string          `gorm:"size:10;not null" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// PaymentResponse DTO with the resolved client view
type PaymentResponse struct {
	PaymentID     uint            `json:"payment_id"`
	ClientID      uint            `json:"client_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	RcptFirstName string          `json:"rcpt_first_name"`
	RcptLastName  string          `json:"rcpt_last_name"`
	RcptBankName  string          `json:"rcpt_bank_name"`
	RcptAcctNo    string          `json:"rcpt_acct_no"`
	Notes         string          `json:"notes,omitempty"`
	Status        string          `json:"status"`
	Client        *ClientResponse `json:"client,omitempty"`
}

func (p *Payment) ToResponse() *PaymentResponse {
	resp := &PaymentResponse{
		PaymentID:     p.PaymentID,
		ClientID:      p.ClientID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		RcptFirstName: p.RcptFirstName,
		RcptLastName:  p.RcptLastName,
		RcptBankName:  p.RcptBankName,
		RcptAcctNo:    p.RcptAcctNo,
		Notes:         p.Notes,
		Status:        p.Status,
	}

	if p.Client != nil {
		resp.Client = p.Client.ToResponse()
	}

	return resp
}

// AutoMigrate creates or updates the clients and payments tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Client{},
		&Payment{},
	)
}
