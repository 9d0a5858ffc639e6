package sheetstore

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type ContactRepository struct {
	Rows RowAPI
}

func NewContactRepository(rows RowAPI) *ContactRepository {
	return &ContactRepository{Rows: rows}
}

// FindAll lê a aba inteira e converte cada linha de dados em Contact,
// preservando a ordem da planilha. Linha com largura diferente do schema
// derruba a leitura com SchemaError; célula vazia é permitida, coluna
// faltando não.
func (r *ContactRepository) FindAll(ctx context.Context) ([]entity.Contact, error) {
	rows, err := r.Rows.ReadRows(ctx, entity.WorksheetContacts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []entity.Contact{}, nil
	}

	contacts := make([]entity.Contact, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(entity.ContactHeaders) {
			return nil, &entity.SchemaError{
				Worksheet: entity.WorksheetContacts,
				Row:       i + 2,
				Got:       len(row),
				Want:      len(entity.ContactHeaders),
			}
		}
		contacts = append(contacts, entity.ContactFromRow(row))
	}
	return contacts, nil
}

// FindByID devolve o primeiro contato com o ID dado, na ordem da planilha.
func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	contacts, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range contacts {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, entity.ErrContactNotFound
}

// Append escreve o contato no fim da aba. Sem verificação de unicidade:
// duplicar email é permitido.
func (r *ContactRepository) Append(ctx context.Context, c *entity.Contact) error {
	return r.Rows.AppendRow(ctx, entity.WorksheetContacts, c.Row())
}

// UpdateByID localiza a primeira linha com o ID do contato e sobrescreve a
// linha inteira naquela posição. A posição é recalculada a cada chamada, o
// ID nunca é inferido do offset. Leitura e escrita não são atômicas e não
// há coluna de versão: duas sessões atualizando o mesmo contato disputam e
// a última escrita vence.
func (r *ContactRepository) UpdateByID(ctx context.Context, c *entity.Contact) error {
	rows, err := r.Rows.ReadRows(ctx, entity.WorksheetContacts)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return entity.ErrContactNotFound
	}
	for i, row := range rows[1:] {
		if len(row) != len(entity.ContactHeaders) {
			return &entity.SchemaError{
				Worksheet: entity.WorksheetContacts,
				Row:       i + 2,
				Got:       len(row),
				Want:      len(entity.ContactHeaders),
			}
		}
		if row[0] == c.ID {
			return r.Rows.UpdateRow(ctx, entity.WorksheetContacts, i+2, c.Row())
		}
	}
	return entity.ErrContactNotFound
}
