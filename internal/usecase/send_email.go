package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

type SendEmailInput struct {
	Account string `json:"account"` // conta remetente pré-autorizada
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SendEmailUseCase struct {
	Contacts ContactRepositoryInterface
	EmailLog EmailLogRepositoryInterface
	Mailer   MailSender
}

func NewSendEmailUseCase(
	contacts ContactRepositoryInterface,
	emailLog EmailLogRepositoryInterface,
	mailer MailSender,
) *SendEmailUseCase {
	return &SendEmailUseCase{Contacts: contacts, EmailLog: emailLog, Mailer: mailer}
}

// Execute envia o email pelo transporte e registra o desfecho no log.
// O registro só é escrito depois que o envio resolve (SENT ou FAILED),
// nunca especulativamente; falha de envio também vira entrada no log.
func (uc *SendEmailUseCase) Execute(ctx context.Context, contactID string, input SendEmailInput) (*entity.EmailLogEntry, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, &DomainError{Code: CodeValidationError, Message: "subject is required"}
	}
	if strings.TrimSpace(input.Account) == "" {
		return nil, &DomainError{Code: CodeValidationError, Message: "sender account is required"}
	}

	contact, err := uc.Contacts.FindByID(ctx, contactID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if contact.Email == "" {
		return nil, &DomainError{
			Code:    CodeContactWithoutEmail,
			Message: "this contact has no email address",
		}
	}

	sendErr := uc.Mailer.Send(input.Account, contact.Email, input.Subject, input.Body)

	status := entity.EmailStatusSent
	if sendErr != nil {
		status = entity.EmailStatusFailed
		log.Printf("falha no envio para %s via %s: %v", contact.Email, input.Account, sendErr)
	}

	record := entity.NewEmailLogEntry(contact.ID, input.Subject, input.Account, status)
	if logErr := uc.EmailLog.Append(ctx, record); logErr != nil {
		return nil, mapStoreError(logErr)
	}

	if sendErr != nil {
		return record, &DomainError{Code: CodeMailSendFailed, Message: sendErr.Error()}
	}
	return record, nil
}
