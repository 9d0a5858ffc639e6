package sheetstore

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type NoteRepository struct {
	Rows RowAPI
}

func NewNoteRepository(rows RowAPI) *NoteRepository {
	return &NoteRepository{Rows: rows}
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]entity.Note, error) {
	rows, err := r.Rows.ReadRows(ctx, entity.WorksheetNotes)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []entity.Note{}, nil
	}

	notes := make([]entity.Note, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(entity.NoteHeaders) {
			return nil, &entity.SchemaError{
				Worksheet: entity.WorksheetNotes,
				Row:       i + 2,
				Got:       len(row),
				Want:      len(entity.NoteHeaders),
			}
		}
		notes = append(notes, entity.NoteFromRow(row))
	}
	return notes, nil
}

func (r *NoteRepository) FindByContactID(ctx context.Context, contactID string) ([]entity.Note, error) {
	notes, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]entity.Note, 0)
	for _, n := range notes {
		if n.ContactID == contactID {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Append escreve a nota no fim da aba. A aba de notas é append-only.
func (r *NoteRepository) Append(ctx context.Context, n *entity.Note) error {
	return r.Rows.AppendRow(ctx, entity.WorksheetNotes, n.Row())
}
