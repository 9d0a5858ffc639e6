// Package sheetstore é o Record Store Adapter: traduz a tabela ordenada de
// linhas da planilha em registros tipados e de volta. É o único chamador do
// backend de planilha.
package sheetstore

import "context"

// RowAPI é o transporte de linhas. Em produção é o client gsheets; nos
// testes, um fake em memória. rowIndex é baseado em 1 e conta o cabeçalho,
// como no Sheets.
type RowAPI interface {
	ReadRows(ctx context.Context, worksheet string) ([][]string, error)
	AppendRow(ctx context.Context, worksheet string, row []string) error
	UpdateRow(ctx context.Context, worksheet string, rowIndex int, row []string) error
}
