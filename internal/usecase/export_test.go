package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/alexandria-crm/internal/entity"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

// TestEncodeCSVRoundTrip - codificar e ler de volta preserva cada valor,
// inclusive campos com vírgula e aspas
func TestEncodeCSVRoundTrip(t *testing.T) {
	contacts := []entity.Contact{
		{
			ID:          "c-1",
			Name:        `Ana "Aninha" Souza`,
			Email:       "ana@acme.com",
			Phone:       "+55 11 99999-0001",
			Company:     "Acme, Inc.",
			Industry:    "Tech",
			Status:      entity.StatusNewLead,
			Contractor:  "Charles",
			CreatedDate: "2025-03-10",
		},
		{
			ID:          "c-2",
			Name:        "Bruno Lima",
			Email:       "bruno@globex.com",
			Status:      entity.StatusClosed,
			CreatedDate: "2025-01-02",
		},
	}

	data, err := usecase.EncodeCSV(contacts)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, entity.ContactHeaders, records[0])
	assert.Equal(t, contacts[0].Row(), records[1])
	assert.Equal(t, contacts[1].Row(), records[2])

	// os valores problemáticos voltam intactos, sem escaping residual
	assert.Equal(t, "Acme, Inc.", records[1][4])
	assert.Equal(t, `Ana "Aninha" Souza`, records[1][1])
}

// TestEncodeCSVEmptySet - só o cabeçalho
func TestEncodeCSVEmptySet(t *testing.T) {
	data, err := usecase.EncodeCSV(nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, entity.ContactHeaders, records[0])
}

// TestExportContactsFiltered - o export cobre a visão filtrada, não o conjunto todo
func TestExportContactsFiltered(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindAll", ctx).Return([]entity.Contact{
		{ID: "1", Name: "Ana", Email: "ana@acme.com", Status: entity.StatusNewLead, CreatedDate: "2025-03-10"},
		{ID: "2", Name: "Bruno", Email: "bruno@globex.com", Status: entity.StatusClosed, CreatedDate: "2025-01-02"},
	}, nil)

	uc := usecase.NewExportContactsUseCase(mockRepo)
	data, err := uc.Execute(ctx, entity.ContactFilter{Status: entity.StatusClosed})

	assert.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "2", records[1][0])
}
