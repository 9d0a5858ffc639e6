package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// EncodeCSV serializa os contatos em CSV com o cabeçalho fixo do schema.
// O csv.Writer cuida do quoting RFC 4180 (vírgula e aspas dentro de campo
// viram campo entre aspas, aspa interna dobrada), então o round-trip por
// qualquer leitor compatível preserva os valores.
func EncodeCSV(contacts []entity.Contact) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(entity.ContactHeaders); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, c := range contacts {
		if err := w.Write(c.Row()); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

type ExportContactsUseCase struct {
	Contacts ContactRepositoryInterface
}

func NewExportContactsUseCase(contacts ContactRepositoryInterface) *ExportContactsUseCase {
	return &ExportContactsUseCase{Contacts: contacts}
}

// Execute exporta a visão filtrada atual, na ordem da planilha.
func (uc *ExportContactsUseCase) Execute(ctx context.Context, f entity.ContactFilter) ([]byte, error) {
	contacts, err := uc.Contacts.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	data, err := EncodeCSV(FilterContacts(contacts, f))
	if err != nil {
		return nil, &TechnicalError{Code: CodeBackendError, Message: err.Error()}
	}
	return data, nil
}
