package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/alexandria-crm/internal/entity"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

// TestListContactsLastContacted - Last Contacted é a maior data entre notas e emails
func TestListContactsLastContacted(t *testing.T) {
	ctx := context.Background()

	mockContacts := new(MockContactRepository)
	mockNotes := new(MockNoteRepository)
	mockLog := new(MockEmailLogRepository)

	mockContacts.On("FindAll", ctx).Return([]entity.Contact{
		{ID: "c-1", Name: "Ana", Email: "ana@acme.com", Status: entity.StatusNewLead},
		{ID: "c-2", Name: "Beto", Email: "beto@acme.com", Status: entity.StatusClosed},
	}, nil)
	mockNotes.On("FindAll", ctx).Return([]entity.Note{
		{ID: "n-1", ContactID: "c-1", Date: "2026-08-10", Body: "ligou"},
		{ID: "n-2", ContactID: "c-1", Date: "2026-08-25", Body: "reunião"},
	}, nil)
	mockLog.On("FindAll", ctx).Return([]entity.EmailLogEntry{
		{ID: "e-1", ContactID: "c-1", Date: "2026-08-20", Status: entity.EmailStatusSent},
	}, nil)

	uc := usecase.NewListContactsUseCase(mockContacts, mockNotes, mockLog)
	views, err := uc.Execute(ctx, entity.ContactFilter{})

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "2026-08-25", views[0].LastContacted)
	assert.Empty(t, views[1].LastContacted)
}

// TestListContactsIgnoresMalformedDates - data fora do formato não derruba a listagem
func TestListContactsIgnoresMalformedDates(t *testing.T) {
	ctx := context.Background()

	mockContacts := new(MockContactRepository)
	mockNotes := new(MockNoteRepository)
	mockLog := new(MockEmailLogRepository)

	mockContacts.On("FindAll", ctx).Return([]entity.Contact{
		{ID: "c-1", Name: "Ana", Email: "ana@acme.com", Status: entity.StatusNewLead},
	}, nil)
	mockNotes.On("FindAll", ctx).Return([]entity.Note{
		{ID: "n-1", ContactID: "c-1", Date: "10/08/2026", Body: "data em formato antigo"},
		{ID: "n-2", ContactID: "c-1", Date: "2026-08-05", Body: "ok"},
	}, nil)
	mockLog.On("FindAll", ctx).Return([]entity.EmailLogEntry{}, nil)

	uc := usecase.NewListContactsUseCase(mockContacts, mockNotes, mockLog)
	views, err := uc.Execute(ctx, entity.ContactFilter{})

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "2026-08-05", views[0].LastContacted)
}

func TestListContactsAppliesFilter(t *testing.T) {
	ctx := context.Background()

	mockContacts := new(MockContactRepository)
	mockNotes := new(MockNoteRepository)
	mockLog := new(MockEmailLogRepository)

	mockContacts.On("FindAll", ctx).Return([]entity.Contact{
		{ID: "c-1", Name: "Ana", Email: "ana@acme.com", Status: entity.StatusNewLead},
		{ID: "c-2", Name: "Beto", Email: "beto@acme.com", Status: entity.StatusClosed},
	}, nil)
	mockNotes.On("FindAll", ctx).Return([]entity.Note{}, nil)
	mockLog.On("FindAll", ctx).Return([]entity.EmailLogEntry{}, nil)

	uc := usecase.NewListContactsUseCase(mockContacts, mockNotes, mockLog)
	views, err := uc.Execute(ctx, entity.ContactFilter{Status: entity.StatusClosed})

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "c-2", views[0].ID)
}

func TestListContactsBackendUnavailable(t *testing.T) {
	ctx := context.Background()

	mockContacts := new(MockContactRepository)
	mockNotes := new(MockNoteRepository)
	mockLog := new(MockEmailLogRepository)

	wrapped := errors.Join(entity.ErrBackendUnavailable, errors.New("sheets: 503"))
	mockContacts.On("FindAll", ctx).Return(nil, wrapped)

	uc := usecase.NewListContactsUseCase(mockContacts, mockNotes, mockLog)
	views, err := uc.Execute(ctx, entity.ContactFilter{})

	assert.Nil(t, views)
	var tErr *usecase.TechnicalError
	assert.ErrorAs(t, err, &tErr)
	assert.Equal(t, usecase.CodeBackendUnavailable, tErr.Code)
}
