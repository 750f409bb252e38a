package client

import (
	"github.com/gobank/ledger/pkg/domain"
)

// birthDateLayout is the day/month/year textual format used by the
// request layer.
const birthDateLayout = "02/01/2006"

// CreateClientRequest is the request body for registering a client.
// BirthDate uses day/month/year.
type CreateClientRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	BirthDate     string `json:"birth_date" validate:"required"`
	CPF           string `json:"cpf" validate:"required,len=11,numeric"`
	StreetAddress string `json:"street_address" validate:"required,max=255"`
	StreetNumber  string `json:"street_number" validate:"required,max=10"`
	Neighborhood  string `json:"neighborhood" validate:"required,max=100"`
	City          string `json:"city" validate:"required,max=100"`
	StateCode     string `json:"state_code" validate:"required,len=2"`
}

// ClientDTO is the API representation of a client.
type ClientDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	CPF       string `json:"cpf"`
	Address   string `json:"address"`
}

// ToClientDTO maps a domain client to its API representation.
func ToClientDTO(c *domain.Client) ClientDTO {
	return ClientDTO{
		ID:        c.ID.String(),
		Name:      c.Name,
		BirthDate: c.BirthDate.Format(birthDateLayout),
		CPF:       c.FormattedCPF(),
		Address:   c.FormattedAddress(),
	}
}
