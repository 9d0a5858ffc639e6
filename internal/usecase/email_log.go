package usecase

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type ListEmailLogUseCase struct {
	EmailLog EmailLogRepositoryInterface
}

func NewListEmailLogUseCase(emailLog EmailLogRepositoryInterface) *ListEmailLogUseCase {
	return &ListEmailLogUseCase{EmailLog: emailLog}
}

// Execute devolve o log completo de envios, na ordem da planilha.
func (uc *ListEmailLogUseCase) Execute(ctx context.Context) ([]entity.EmailLogEntry, error) {
	entries, err := uc.EmailLog.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}

// History devolve só os envios de um contato.
func (uc *ListEmailLogUseCase) History(ctx context.Context, contactID string) ([]entity.EmailLogEntry, error) {
	entries, err := uc.EmailLog.FindByContactID(ctx, contactID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}
