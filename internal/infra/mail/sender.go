package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, accounts map[string]SenderAccount) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		Accounts: accounts,
	}
}

// Send envia a mensagem pela conta indicada e bloqueia até o SMTP resolver.
// Conta desconhecida é erro: não há fallback entre remetentes, e o core não
// repete envios que falharam.
func (s *EmailSender) Send(account, to, subject, body string) error {
	acc, ok := s.Accounts[account]
	if !ok {
		return fmt.Errorf("unknown sender account %q", account)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", acc.Address)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, acc.Address, acc.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
