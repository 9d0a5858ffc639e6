package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note é o registro de interação anotado por um contractor. Append-only:
// nunca é editada nem removida depois de escrita.
type Note struct {
	ID         string `json:"id"`
	ContactID  string `json:"contact_id"`
	Contractor string `json:"contractor"`
	Date       string `json:"date"` // YYYY-MM-DD
	Body       string `json:"body"`
}

func NewNote(contactID, contractor, body string) *Note {
	return &Note{
		ID:         uuid.New().String(),
		ContactID:  contactID,
		Contractor: contractor,
		Date:       time.Now().Format("2006-01-02"),
		Body:       body,
	}
}

func (n *Note) Row() []string {
	return []string{n.ID, n.ContactID, n.Contractor, n.Date, n.Body}
}

func NoteFromRow(row []string) Note {
	return Note{
		ID:         row[0],
		ContactID:  row[1],
		Contractor: row[2],
		Date:       row[3],
		Body:       row[4],
	}
}
