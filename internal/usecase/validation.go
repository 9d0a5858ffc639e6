package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ContactInput é o payload de criação e de atualização de contato.
type ContactInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Industry   string `json:"industry"`
	Status     string `json:"status"`
	Contractor string `json:"contractor"`
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Status != "" && !entity.IsCanonicalStatus(input.Status) {
		errors = append(errors, ValidationError{"status",
			"must be one of: " + strings.Join(entity.PipelineStatuses, ", ")})
	}

	return errors
}

// validationFailed condensa os erros de campo num único DomainError, no
// formato que o shell de UI mostra ao usuário.
func validationFailed(errs []ValidationError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidationError,
		Message: "validation failed: " + strings.Join(msgs, ", "),
	}
}
