// Package client provides the clients catalog.
package client

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/entity"
	"gestobra/internal/domain/filter"
	"gestobra/internal/domain/reports"
)

const MaxNameLength = 100

// Approval statuses derived from the Approved flag.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Client is a company or person the construction company works for.
type Client struct {
	entity.Catalog

	Company  string `db:"company" json:"company,omitempty"`
	Email    string `db:"email" json:"email,omitempty"`
	Phone    string `db:"phone" json:"phone,omitempty"`
	Address  string `db:"address" json:"address,omitempty"`
	Approved bool   `db:"approved" json:"approved"`
}

// NewClient creates a pending client.
func NewClient(name string) *Client {
	return &Client{Catalog: entity.NewCatalog("", name)}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := entity.ValidateNameLength(c.Name, MaxNameLength); err != nil {
		return err
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}
	return nil
}

// Status is "approved" or "pending".
func (c *Client) Status() string {
	if c.Approved {
		return StatusApproved
	}
	return StatusPending
}

// Fields lists what the clients screen can filter on.
func Fields() filter.Fields[*Client] {
	return filter.Fields[*Client]{
		Text: map[string]func(*Client) string{
			"name":    func(c *Client) string { return c.Name },
			"company": func(c *Client) string { return c.Company },
			"email":   func(c *Client) string { return c.Email },
			"phone":   func(c *Client) string { return c.Phone },
			"address": func(c *Client) string { return c.Address },
		},
		Search: []string{"name", "company", "email"},
		Dates: map[string]func(*Client) *time.Time{
			"createdAt": func(c *Client) *time.Time { return c.CreatedOn() },
		},
		DefaultDate: "createdAt",
		Enums: map[string]func(*Client) string{
			"status": (*Client).Status,
		},
	}
}

const FlagContact = "includeContact"

// NewSelector returns the report selector for clients.
func NewSelector() *reports.Selector[*Client] {
	return reports.NewSelector(map[reports.Type]func(*Client) string{
		reports.TypeByStatus: (*Client).Status,
	})
}

// ReportLayout describes the exported clients table.
func ReportLayout() reports.Layout[*Client] {
	return reports.Layout[*Client]{
		Title: "Clients",
		Columns: []reports.Column{
			{Key: "code", Header: "Code"},
			{Key: "name", Header: "Name"},
			{Key: "company", Header: "Company"},
			{Key: "email", Header: "Email", Flag: FlagContact},
			{Key: "phone", Header: "Phone", Flag: FlagContact},
			{Key: "address", Header: "Address", Flag: FlagContact},
			{Key: "status", Header: "Status"},
		},
		Row: func(c *Client) map[string]any {
			return map[string]any{
				"code":    c.Code,
				"name":    c.Name,
				"company": c.Company,
				"email":   c.Email,
				"phone":   c.Phone,
				"address": strings.TrimSpace(c.Address),
				"status":  c.Status(),
			}
		},
	}
}
