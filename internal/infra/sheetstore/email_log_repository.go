package sheetstore

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type EmailLogRepository struct {
	Rows RowAPI
}

func NewEmailLogRepository(rows RowAPI) *EmailLogRepository {
	return &EmailLogRepository{Rows: rows}
}

func (r *EmailLogRepository) FindAll(ctx context.Context) ([]entity.EmailLogEntry, error) {
	rows, err := r.Rows.ReadRows(ctx, entity.WorksheetEmailLog)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []entity.EmailLogEntry{}, nil
	}

	entries := make([]entity.EmailLogEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(entity.EmailLogHeaders) {
			return nil, &entity.SchemaError{
				Worksheet: entity.WorksheetEmailLog,
				Row:       i + 2,
				Got:       len(row),
				Want:      len(entity.EmailLogHeaders),
			}
		}
		entries = append(entries, entity.EmailLogEntryFromRow(row))
	}
	return entries, nil
}

func (r *EmailLogRepository) FindByContactID(ctx context.Context, contactID string) ([]entity.EmailLogEntry, error) {
	entries, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]entity.EmailLogEntry, 0)
	for _, e := range entries {
		if e.ContactID == contactID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Append escreve a entrada no fim da aba. O log de emails é append-only.
func (r *EmailLogRepository) Append(ctx context.Context, e *entity.EmailLogEntry) error {
	return r.Rows.AppendRow(ctx, entity.WorksheetEmailLog, e.Row())
}
