// Package repository implements the data-access contracts from
// pkg/repository on top of gorm. Database rows are mapped to and
// from the domain entities here; nothing above this package sees
// gorm types or gorm errors.
package repository

import (
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is the clients table. CPF carries the unique index that
// backs domain.ErrDuplicateCPF.
type Client struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	BirthDate     time.Time `gorm:"not null"`
	CPF           string    `gorm:"column:cpf;size:11;uniqueIndex;not null"`
	StreetAddress string    `gorm:"size:255"`
	StreetNumber  string    `gorm:"size:10"`
	Neighborhood  string    `gorm:"size:100"`
	City          string    `gorm:"size:100"`
	StateCode     string    `gorm:"size:2"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Accounts []Account `gorm:"foreignKey:ClientID"`
}

// Account is the accounts table. Number carries the unique index
// that backs domain.ErrDuplicateAccountNumber.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number    string          `gorm:"size:20;uniqueIndex;not null"`
	Agency    string          `gorm:"size:10;not null;default:'0001'"`
	Balance   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ClientID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Operation is the operations table. Rows are write-once: no update
// or delete path exists in this package.
type Operation struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind          string          `gorm:"size:1;not null;index"`
	Way           string          `gorm:"size:10;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Timestamp     time.Time       `gorm:"not null;index"`
	SourceID      *uuid.UUID      `gorm:"type:uuid;index"`
	DestinationID *uuid.UUID      `gorm:"type:uuid;index"`

	Source      *Account `gorm:"foreignKey:SourceID"`
	Destination *Account `gorm:"foreignKey:DestinationID"`
}

func clientToModel(c *domain.Client) *Client {
	return &Client{
		ID:            c.ID,
		Name:          c.Name,
		BirthDate:     c.BirthDate,
		CPF:           c.CPF,
		StreetAddress: c.StreetAddress,
		StreetNumber:  c.StreetNumber,
		Neighborhood:  c.Neighborhood,
		City:          c.City,
		StateCode:     c.StateCode,
		CreatedAt:     c.CreatedAt,
	}
}

func clientToDomain(m *Client) *domain.Client {
	return &domain.Client{
		ID:            m.ID,
		Name:          m.Name,
		BirthDate:     m.BirthDate,
		CPF:           m.CPF,
		StreetAddress: m.StreetAddress,
		StreetNumber:  m.StreetNumber,
		Neighborhood:  m.Neighborhood,
		City:          m.City,
		StateCode:     m.StateCode,
		CreatedAt:     m.CreatedAt,
	}
}

func accountToModel(a *domain.Account) *Account {
	return &Account{
		ID:        a.ID,
		Number:    a.Number,
		Agency:    a.Agency,
		Balance:   a.Balance,
		ClientID:  a.ClientID,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}

func accountToDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:        m.ID,
		Number:    m.Number,
		Agency:    m.Agency,
		Balance:   m.Balance,
		ClientID:  m.ClientID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func opToModel(o *domain.Operation) *Operation {
	return &Operation{
		ID:            o.ID,
		Kind:          string(o.Kind),
		Way:           string(o.Way),
		Amount:        o.Amount,
		Timestamp:     o.Timestamp,
		SourceID:      o.SourceID,
		DestinationID: o.DestinationID,
	}
}

func opToDomain(m *Operation) *domain.Operation {
	o := &domain.Operation{
		ID:            m.ID,
		Kind:          domain.OperationKind(m.Kind),
		Way:           domain.OperationWay(m.Way),
		Amount:        m.Amount,
		Timestamp:     m.Timestamp,
		SourceID:      m.SourceID,
		DestinationID: m.DestinationID,
	}
	if m.Source != nil {
		o.SourceNumber = m.Source.Number
	}
	if m.Destination != nil {
		o.DestinationNumber = m.Destination.Number
	}
	return o
}
