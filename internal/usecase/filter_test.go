package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/alexandria-crm/internal/entity"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

func sampleContacts() []entity.Contact {
	return []entity.Contact{
		{ID: "1", Name: "Ana Souza", Email: "ana@acme.com", Company: "Acme, Inc.", Industry: "Tech", Status: entity.StatusNewLead, Contractor: "Charles"},
		{ID: "2", Name: "Bruno Lima", Email: "bruno@globex.com", Company: "Globex", Industry: "Finance", Status: entity.StatusClosed, Contractor: "Alexandria"},
		{ID: "3", Name: "Carla Dias", Email: "carla@initech.com", Company: "Initech", Industry: "Tech", Status: entity.StatusInProgress, Contractor: "Charles"},
		{ID: "4", Name: "Diego Reis", Email: "diego@acme.com", Company: "Acme, Inc.", Industry: "Tech", Status: entity.StatusNewLead, Contractor: "Alexandria"},
	}
}

// TestFilterAllCriteriaUnset - filtro vazio devolve o conjunto inteiro, na mesma ordem
func TestFilterAllCriteriaUnset(t *testing.T) {
	contacts := sampleContacts()

	out := usecase.FilterContacts(contacts, entity.ContactFilter{Status: entity.StatusAll})

	assert.Equal(t, contacts, out)
}

func TestFilterByStatus(t *testing.T) {
	out := usecase.FilterContacts(sampleContacts(), entity.ContactFilter{Status: entity.StatusNewLead})

	assert.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "4", out[1].ID)
}

// TestFilterCombinedAnd - critérios ativos combinam em AND
func TestFilterCombinedAnd(t *testing.T) {
	out := usecase.FilterContacts(sampleContacts(), entity.ContactFilter{
		Status:     entity.StatusNewLead,
		Contractor: "Alexandria",
		Industry:   "Tech",
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "4", out[0].ID)
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	out := usecase.FilterContacts(sampleContacts(), entity.ContactFilter{Query: "ACME"})

	assert.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "4", out[1].ID)

	// busca também por nome e email
	byName := usecase.FilterContacts(sampleContacts(), entity.ContactFilter{Query: "carla"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "3", byName[0].ID)
}

// TestFilterIsOrderPreservingSubsequence - o resultado é sempre subsequência da entrada
func TestFilterIsOrderPreservingSubsequence(t *testing.T) {
	contacts := sampleContacts()

	out := usecase.FilterContacts(contacts, entity.ContactFilter{Industry: "Tech"})

	pos := 0
	for _, got := range out {
		found := false
		for ; pos < len(contacts); pos++ {
			if contacts[pos].ID == got.ID {
				found = true
				pos++
				break
			}
		}
		assert.True(t, found, "contact %s out of source order", got.ID)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	out := usecase.FilterContacts(nil, entity.ContactFilter{Status: entity.StatusClosed, Query: "acme"})

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
