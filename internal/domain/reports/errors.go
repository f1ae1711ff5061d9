package reports

import "gestobra/internal/core/apperror"

func unsupportedType(t Type) error {
	return apperror.NewValidation("unsupported report type").
		WithDetail("type", string(t))
}
