package usecase

import (
	"context"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// Interfaces dos colaboradores externos. As implementações ficam em infra;
// os use cases só conhecem estes contratos.

type ContactRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.Contact, error)
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	Append(ctx context.Context, c *entity.Contact) error
	UpdateByID(ctx context.Context, c *entity.Contact) error
}

type NoteRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.Note, error)
	FindByContactID(ctx context.Context, contactID string) ([]entity.Note, error)
	Append(ctx context.Context, n *entity.Note) error
}

type EmailLogRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.EmailLogEntry, error)
	FindByContactID(ctx context.Context, contactID string) ([]entity.EmailLogEntry, error)
	Append(ctx context.Context, e *entity.EmailLogEntry) error
}

// MailSender é o transporte de email. O envio bloqueia até resolver; o core
// não repete envios que falharam.
type MailSender interface {
	Send(account, to, subject, body string) error
}
