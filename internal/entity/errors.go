package entity

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable cobre falhas de transporte ou autenticação ao falar
// com o backend de planilha. O core não tenta de novo; quem decide repetir
// é a camada de cima.
var ErrBackendUnavailable = errors.New("spreadsheet backend unavailable")

// ErrContactNotFound indica que um update ou busca mirou um ID inexistente.
var ErrContactNotFound = errors.New("contact not found")

// SchemaError indica que uma linha da planilha não bate com a largura fixa
// do schema da aba.
type SchemaError struct {
	Worksheet string
	Row       int // linha da planilha, baseada em 1, contando o cabeçalho
	Got       int
	Want      int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("worksheet %s row %d: got %d columns, want %d",
		e.Worksheet, e.Row, e.Got, e.Want)
}
