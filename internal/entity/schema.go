package entity

// Nomes das abas da planilha.
const (
	WorksheetContacts = "Contacts"
	WorksheetNotes    = "Notes"
	WorksheetEmailLog = "Email_Log"
)

// Cabeçalhos fixos de cada aba, na ordem exata das colunas. O schema é de
// largura fixa: toda linha de dados precisa ter exatamente essas colunas
// (célula vazia pode, coluna faltando não).
var (
	ContactHeaders = []string{
		"Contact ID", "Name", "Email", "Phone", "Company", "Industry",
		"Status", "Assigned Contractor", "Created Date",
	}
	NoteHeaders     = []string{"Note ID", "Contact ID", "Contractor", "Date", "Note"}
	EmailLogHeaders = []string{"Email ID", "Contact ID", "Subject", "Sent By", "Date", "Status"}
)
