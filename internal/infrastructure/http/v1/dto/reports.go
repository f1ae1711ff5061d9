package dto

import (
	"strings"

	"gestobra/internal/domain/reports"
)

// ReportRequest is what the report dialog submits.
type ReportRequest struct {
	Type         string          `json:"type" binding:"required"`
	Value        string          `json:"value"`
	ContentFlags map[string]bool `json:"contentFlags"`
}

// ToConfiguration converts DTO to a report configuration. Flags pass through untouched.
func (r *ReportRequest) ToConfiguration() reports.Configuration {
	return reports.Configuration{
		Type:         reports.Type(strings.TrimSpace(r.Type)),
		Value:        strings.TrimSpace(r.Value),
		ContentFlags: r.ContentFlags,
	}
}

// ReportAckResponse is returned when the report was delivered elsewhere.
type ReportAckResponse struct {
	FileName string `json:"fileName,omitempty"`
}
