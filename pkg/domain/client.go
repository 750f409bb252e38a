// Package domain holds the ledger entities (Client, Account,
// Operation) and the typed errors the rule engine and request layer
// share. Entities are plain structs; all balance mutation goes
// through the account service, never through entity methods.
package domain

import (
	"fmt"
	"time"

	"github.com/gobank/ledger/pkg/cpf"
	"github.com/google/uuid"
)

// Client is a bank client identified by a unique CPF.
type Client struct {
	ID            uuid.UUID
	Name          string
	BirthDate     time.Time
	CPF           string
	StreetAddress string
	StreetNumber  string
	Neighborhood  string
	City          string
	StateCode     string
	CreatedAt     time.Time
}

// NewClient builds a Client after validating the CPF checksum.
// Uniqueness is enforced by the store at persistence time.
func NewClient(name string, birthDate time.Time, cpfNumber string) (*Client, error) {
	if !cpf.Valid(cpfNumber) {
		return nil, ErrInvalidCPF
	}
	return &Client{
		ID:        uuid.New(),
		Name:      name,
		BirthDate: birthDate,
		CPF:       cpfNumber,
		CreatedAt: time.Now(),
	}, nil
}

// FormattedCPF returns the CPF in its xxx.xxx.xxx-xx presentation.
func (c *Client) FormattedCPF() string {
	return cpf.Format(c.CPF)
}

// FormattedAddress renders the postal address on a single line.
func (c *Client) FormattedAddress() string {
	return fmt.Sprintf("%s, %s - %s - %s/%s",
		c.StreetAddress, c.StreetNumber, c.Neighborhood, c.City, c.StateCode)
}
