package mail

// SenderAccount é uma conta SMTP pré-autorizada para envio. As credenciais
// são carregadas uma vez no startup e só lidas depois disso.
type SenderAccount struct {
	Address  string
	Password string
}

// EmailSender envia por uma das contas pré-autorizadas, escolhida pelo
// nome a cada envio.
type EmailSender struct {
	Host     string
	Port     int
	Accounts map[string]SenderAccount
}
