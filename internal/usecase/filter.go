package usecase

import (
	"strings"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// FilterContacts aplica o filtro sobre o conjunto em memória. Função pura:
// critérios ativos combinam em AND, a ordem de entrada é preservada e o
// resultado é sempre uma subsequência da entrada. Conjunto vazio devolve
// conjunto vazio, nunca erro.
func FilterContacts(contacts []entity.Contact, f entity.ContactFilter) []entity.Contact {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if f.Status != "" && f.Status != entity.StatusAll && c.Status != f.Status {
			continue
		}
		if f.Contractor != "" && c.Contractor != f.Contractor {
			continue
		}
		if f.Industry != "" && c.Industry != f.Industry {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesQuery busca a substring (já em minúsculas) em nome, email ou
// company, como o campo de busca do dashboard.
func matchesQuery(c entity.Contact, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Email), query) ||
		strings.Contains(strings.ToLower(c.Company), query)
}
