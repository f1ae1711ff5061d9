package dto

import "gestobra/internal/domain/catalogs/client"

// CreateClientRequest is the request body for creating a client.
type CreateClientRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Approved bool   `json:"approved"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClientRequest) ToEntity() (*client.Client, error) {
	c := client.NewClient(r.Name)
	c.Code = r.Code
	c.Company = r.Company
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.Approved = r.Approved
	return c, nil
}

// UpdateClientRequest is the request body for updating a client.
type UpdateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Approved bool   `json:"approved"`
	Version  int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) error {
	c.Name = r.Name
	c.Company = r.Company
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.Approved = r.Approved
	c.Version = r.Version
	return nil
}

// ClientResponse is the response body for a client.
type ClientResponse struct {
	CatalogResponse
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Approved bool   `json:"approved"`
	Status   string `json:"status"`
}

// FromClient creates response DTO from domain entity.
func FromClient(c *client.Client) *ClientResponse {
	return &ClientResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Company:         c.Company,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Approved:        c.Approved,
		Status:          c.Status(),
	}
}
