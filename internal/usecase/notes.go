package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type NoteInput struct {
	Contractor string `json:"contractor"`
	Body       string `json:"body"`
}

type AddNoteUseCase struct {
	Contacts ContactRepositoryInterface
	Notes    NoteRepositoryInterface
}

func NewAddNoteUseCase(contacts ContactRepositoryInterface, notes NoteRepositoryInterface) *AddNoteUseCase {
	return &AddNoteUseCase{Contacts: contacts, Notes: notes}
}

// Execute anexa uma nota ao histórico do contato. Notas nunca são editadas
// nem removidas depois.
func (uc *AddNoteUseCase) Execute(ctx context.Context, contactID string, input NoteInput) (*entity.Note, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, &DomainError{Code: CodeValidationError, Message: "note body is required"}
	}

	contact, err := uc.Contacts.FindByID(ctx, contactID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	note := entity.NewNote(contact.ID, input.Contractor, input.Body)
	if err := uc.Notes.Append(ctx, note); err != nil {
		return nil, mapStoreError(err)
	}
	return note, nil
}

type ListNotesUseCase struct {
	Notes NoteRepositoryInterface
}

func NewListNotesUseCase(notes NoteRepositoryInterface) *ListNotesUseCase {
	return &ListNotesUseCase{Notes: notes}
}

func (uc *ListNotesUseCase) Execute(ctx context.Context, contactID string) ([]entity.Note, error) {
	notes, err := uc.Notes.FindByContactID(ctx, contactID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return notes, nil
}
