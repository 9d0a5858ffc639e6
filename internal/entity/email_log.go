package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmailStatusSent   = "SENT"
	EmailStatusFailed = "FAILED"
)

// EmailLogEntry registra o desfecho de um envio de email. Só é criada
// depois que o transporte resolve (SENT ou FAILED), nunca antes.
type EmailLogEntry struct {
	ID        string `json:"id"`
	ContactID string `json:"contact_id"`
	Subject   string `json:"subject"`
	SentBy    string `json:"sent_by"` // nome da conta remetente
	Date      string `json:"date"`    // YYYY-MM-DD
	Status    string `json:"status"`  // SENT, FAILED
}

func NewEmailLogEntry(contactID, subject, sentBy, status string) *EmailLogEntry {
	return &EmailLogEntry{
		ID:        uuid.New().String(),
		ContactID: contactID,
		Subject:   subject,
		SentBy:    sentBy,
		Date:      time.Now().Format("2006-01-02"),
		Status:    status,
	}
}

func (e *EmailLogEntry) Row() []string {
	return []string{e.ID, e.ContactID, e.Subject, e.SentBy, e.Date, e.Status}
}

func EmailLogEntryFromRow(row []string) EmailLogEntry {
	return EmailLogEntry{
		ID:        row[0],
		ContactID: row[1],
		Subject:   row[2],
		SentBy:    row[3],
		Date:      row[4],
		Status:    row[5],
	}
}
