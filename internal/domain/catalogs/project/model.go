// Package project provides the construction projects catalog.
package project

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/entity"
	"gestobra/internal/core/id"
)

const MaxNameLength = 100

// Status of a project.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project is a construction job, optionally tied to a client.
type Project struct {
	entity.Catalog

	ClientID  *id.ID          `db:"client_id" json:"clientId,omitempty"`
	Location  string          `db:"location" json:"location,omitempty"`
	Status    Status          `db:"status" json:"status"`
	StartDate *time.Time      `db:"start_date" json:"startDate,omitempty"`
	EndDate   *time.Time      `db:"end_date" json:"endDate,omitempty"`
	Budget    decimal.Decimal `db:"budget" json:"budget"`
}

// NewProject creates a planned project.
func NewProject(name string) *Project {
	return &Project{
		Catalog: entity.NewCatalog("", name),
		Status:  StatusPlanned,
	}
}

// Validate implements entity.Validatable interface.
func (p *Project) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := entity.ValidateNameLength(p.Name, MaxNameLength); err != nil {
		return err
	}
	if !p.Status.IsValid() {
		return apperror.NewValidation("invalid project status").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}
	if p.Budget.IsNegative() {
		return apperror.NewValidation("budget cannot be negative").
			WithDetail("field", "budget")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return apperror.NewValidation("end date is before start date").
			WithDetail("field", "endDate")
	}
	return nil
}

// StatusValue returns the status as a string, for filters and reports.
func (p *Project) StatusValue() string {
	return string(p.Status)
}
