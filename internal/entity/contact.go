package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status canônicos do pipeline. Qualquer outro valor na planilha cai no
// bucket Unknown na visão de pipeline, nunca é descartado.
const (
	StatusNewLead    = "New Lead"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
	StatusUnknown    = "Unknown"

	// StatusAll é o valor de filtro que aceita qualquer status.
	StatusAll = "All"
)

// PipelineStatuses são os estágios exibidos no pipeline, na ordem do board.
var PipelineStatuses = []string{StatusNewLead, StatusInProgress, StatusClosed}

type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Status      string `json:"status"`
	Contractor  string `json:"contractor,omitempty"`
	CreatedDate string `json:"created_date"` // YYYY-MM-DD, como na planilha
}

// ContactFilter é o critério transitório da listagem; não é persistido.
// Campos vazios (ou StatusAll) não restringem o resultado.
type ContactFilter struct {
	Status     string
	Contractor string
	Industry   string
	Query      string // busca case-insensitive em nome, email e company
}

// NewContact cria um contato com ID gerado e data de criação de hoje.
// Email duplicado é permitido: a planilha não tem chave única.
func NewContact(name, email, phone, company, industry, status, contractor string) (*Contact, error) {
	if status == "" {
		status = StatusNewLead
	}
	contact := &Contact{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Company:     company,
		Industry:    industry,
		Status:      status,
		Contractor:  contractor,
		CreatedDate: time.Now().Format("2006-01-02"),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// IsCanonicalStatus diz se o status pertence a um dos estágios do pipeline.
func IsCanonicalStatus(status string) bool {
	for _, s := range PipelineStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Row serializa o contato na ordem exata das colunas de ContactHeaders.
func (c *Contact) Row() []string {
	return []string{
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.Industry,
		c.Status,
		c.Contractor,
		c.CreatedDate,
	}
}

// ContactFromRow monta o contato a partir de uma linha já validada
// (len(row) == len(ContactHeaders); quem lê a planilha garante a largura).
func ContactFromRow(row []string) Contact {
	return Contact{
		ID:          row[0],
		Name:        row[1],
		Email:       row[2],
		Phone:       row[3],
		Company:     row[4],
		Industry:    row[5],
		Status:      row[6],
		Contractor:  row[7],
		CreatedDate: row[8],
	}
}
