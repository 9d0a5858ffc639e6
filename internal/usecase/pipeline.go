package usecase

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// GroupByStatus particiona os contatos nos buckets fixos do pipeline.
// Todos os buckets aparecem no resultado, mesmo vazios. Status fora do
// conjunto canônico vai para o bucket Unknown em vez de ser descartado:
// perder registro em silêncio não é opção.
func GroupByStatus(contacts []entity.Contact) map[string][]entity.Contact {
	buckets := map[string][]entity.Contact{
		entity.StatusUnknown: {},
	}
	for _, s := range entity.PipelineStatuses {
		buckets[s] = []entity.Contact{}
	}
	for _, c := range contacts {
		key := c.Status
		if !entity.IsCanonicalStatus(key) {
			key = entity.StatusUnknown
		}
		buckets[key] = append(buckets[key], c)
	}
	return buckets
}

type PipelineUseCase struct {
	Contacts ContactRepositoryInterface
}

func NewPipelineUseCase(contacts ContactRepositoryInterface) *PipelineUseCase {
	return &PipelineUseCase{Contacts: contacts}
}

func (uc *PipelineUseCase) Execute(ctx context.Context) (map[string][]entity.Contact, error) {
	contacts, err := uc.Contacts.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return GroupByStatus(contacts), nil
}
