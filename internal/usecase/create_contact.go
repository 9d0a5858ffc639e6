package usecase

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type CreateContactUseCase struct {
	Contacts ContactRepositoryInterface
}

func NewCreateContactUseCase(contacts ContactRepositoryInterface) *CreateContactUseCase {
	return &CreateContactUseCase{Contacts: contacts}
}

// Execute valida o payload e acrescenta o contato ao fim da planilha.
// Não há verificação de unicidade: dois contatos com o mesmo email são
// dois registros.
func (uc *CreateContactUseCase) Execute(ctx context.Context, input ContactInput) (*entity.Contact, error) {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	contact, err := entity.NewContact(
		input.Name,
		input.Email,
		input.Phone,
		input.Company,
		input.Industry,
		input.Status,
		input.Contractor,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidationError, Message: err.Error()}
	}

	if err := uc.Contacts.Append(ctx, contact); err != nil {
		return nil, mapStoreError(err)
	}
	return contact, nil
}
