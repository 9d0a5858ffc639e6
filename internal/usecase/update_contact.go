package usecase

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type UpdateContactUseCase struct {
	Contacts ContactRepositoryInterface
}

func NewUpdateContactUseCase(contacts ContactRepositoryInterface) *UpdateContactUseCase {
	return &UpdateContactUseCase{Contacts: contacts}
}

// Execute reescreve a linha inteira do contato, preservando ID e data de
// criação. É read-then-write sem verificação de versão: duas sessões
// atualizando o mesmo contato disputam e a última escrita vence.
func (uc *UpdateContactUseCase) Execute(ctx context.Context, id string, input ContactInput) (*entity.Contact, error) {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	existing, err := uc.Contacts.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	updated := &entity.Contact{
		ID:          existing.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		Industry:    input.Industry,
		Status:      input.Status,
		Contractor:  input.Contractor,
		CreatedDate: existing.CreatedDate,
	}
	if updated.Status == "" {
		updated.Status = existing.Status
	}
	if err := updated.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidationError, Message: err.Error()}
	}

	if err := uc.Contacts.UpdateByID(ctx, updated); err != nil {
		return nil, mapStoreError(err)
	}
	return updated, nil
}
