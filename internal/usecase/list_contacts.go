package usecase

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// ContactView é o contato decorado para o dashboard.
type ContactView struct {
	entity.Contact
	LastContacted string `json:"last_contacted,omitempty"`
}

type ListContactsUseCase struct {
	Contacts ContactRepositoryInterface
	Notes    NoteRepositoryInterface
	EmailLog EmailLogRepositoryInterface
}

func NewListContactsUseCase(
	contacts ContactRepositoryInterface,
	notes NoteRepositoryInterface,
	emailLog EmailLogRepositoryInterface,
) *ListContactsUseCase {
	return &ListContactsUseCase{Contacts: contacts, Notes: notes, EmailLog: emailLog}
}

// Execute lê o conjunto inteiro, aplica o filtro e calcula Last Contacted
// por contato (maior data entre notas e emails registrados). Uma leitura
// por aba, não uma por contato.
func (uc *ListContactsUseCase) Execute(ctx context.Context, f entity.ContactFilter) ([]ContactView, error) {
	contacts, err := uc.Contacts.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	notes, err := uc.Notes.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	emails, err := uc.EmailLog.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	lastByContact := map[string]string{}
	for _, n := range notes {
		bumpLastContacted(lastByContact, n.ContactID, n.Date)
	}
	for _, e := range emails {
		bumpLastContacted(lastByContact, e.ContactID, e.Date)
	}

	filtered := FilterContacts(contacts, f)
	views := make([]ContactView, 0, len(filtered))
	for _, c := range filtered {
		views = append(views, ContactView{
			Contact:       c,
			LastContacted: lastByContact[c.ID],
		})
	}
	return views, nil
}

// bumpLastContacted guarda a maior data vista para o contato. Datas ISO
// (YYYY-MM-DD) comparam corretamente como string; valor fora do formato
// é ignorado em vez de derrubar a listagem.
func bumpLastContacted(last map[string]string, contactID, date string) {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return
	}
	if date > last[contactID] {
		last[contactID] = date
	}
}
