package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
	"gestobra/internal/domain/catalogs/project"
	"gestobra/internal/domain/filter"
)

// CreateProjectRequest is the request body for creating a project.
// Dates are days, "2006-01-02".
type CreateProjectRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name" binding:"required"`
	ClientID  string          `json:"clientId"`
	Location  string          `json:"location"`
	Status    project.Status  `json:"status"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Budget    decimal.Decimal `json:"budget"`
}

// ToEntity converts DTO to domain entity. The status defaults to "planned".
func (r *CreateProjectRequest) ToEntity() (*project.Project, error) {
	p := project.NewProject(r.Name)
	p.Code = r.Code
	if r.Status != "" {
		p.Status = r.Status
	}
	if err := applyProjectFields(p, r.ClientID, r.Location, r.StartDate, r.EndDate, r.Budget); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProjectRequest is the request body for updating a project.
type UpdateProjectRequest struct {
	Name      string          `json:"name" binding:"required"`
	ClientID  string          `json:"clientId"`
	Location  string          `json:"location"`
	Status    project.Status  `json:"status" binding:"required"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Budget    decimal.Decimal `json:"budget"`
	Version   int             `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProjectRequest) ApplyTo(p *project.Project) error {
	if err := applyProjectFields(p, r.ClientID, r.Location, r.StartDate, r.EndDate, r.Budget); err != nil {
		return err
	}
	p.Name = r.Name
	p.Status = r.Status
	p.Version = r.Version
	return nil
}

func applyProjectFields(p *project.Project, clientID, location, start, end string, budget decimal.Decimal) error {
	p.ClientID = nil
	if clientID != "" {
		cid, err := id.Parse(clientID)
		if err != nil {
			return apperror.NewValidation("invalid client id").
				WithDetail("field", "clientId")
		}
		p.ClientID = &cid
	}

	startDate, err := parseDate("startDate", start)
	if err != nil {
		return err
	}
	endDate, err := parseDate("endDate", end)
	if err != nil {
		return err
	}

	p.Location = location
	p.StartDate = startDate
	p.EndDate = endDate
	p.Budget = budget
	return nil
}

// ProjectResponse is the response body for a project.
type ProjectResponse struct {
	CatalogResponse
	ClientID  *string         `json:"clientId,omitempty"`
	Location  string          `json:"location,omitempty"`
	Status    project.Status  `json:"status"`
	StartDate *time.Time      `json:"startDate,omitempty"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	Budget    decimal.Decimal `json:"budget"`
}

// FromProject creates response DTO from domain entity.
func FromProject(p *project.Project) *ProjectResponse {
	resp := &ProjectResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Location:        p.Location,
		Status:          p.Status,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Budget:          p.Budget,
	}
	if p.ClientID != nil {
		s := p.ClientID.String()
		resp.ClientID = &s
	}
	return resp
}

// parseDate reads an optional calendar day. Stored dates are UTC midnights.
func parseDate(field, value string) (*time.Time, error) {
	day, err := filter.ParseDay(value, time.UTC)
	if err != nil {
		return nil, apperror.NewValidation("invalid date").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return day, nil
}
