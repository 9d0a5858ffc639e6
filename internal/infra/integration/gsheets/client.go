package gsheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// Client fala com uma planilha do Google Sheets por operações orientadas a
// linha. É o único transporte do Record Store; toda falha de rede ou de
// autenticação sobe embrulhada em entity.ErrBackendUnavailable.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient autentica com a credencial de service account (JSON) lida uma
// vez no startup. Não há reconfiguração em runtime.
func NewClient(ctx context.Context, spreadsheetID string, credentials []byte) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("building sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRows devolve todas as linhas da aba, incluindo o cabeçalho. A API de
// Values omite células vazias no fim da linha, então linhas mais curtas que
// o cabeçalho são completadas com células vazias.
func (c *Client) ReadRows(ctx context.Context, worksheet string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", entity.ErrBackendUnavailable, worksheet, err)
	}

	width := 0
	if len(resp.Values) > 0 {
		width = len(resp.Values[0])
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, width)
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		for len(row) < width {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow acrescenta uma linha ao fim da aba.
func (c *Client) AppendRow(ctx context.Context, worksheet string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toCells(row)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, worksheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: appending to %s: %v", entity.ErrBackendUnavailable, worksheet, err)
	}
	return nil
}

// UpdateRow sobrescreve a linha rowIndex (baseada em 1, contando o
// cabeçalho) com os valores dados.
func (c *Client) UpdateRow(ctx context.Context, worksheet string, rowIndex int, row []string) error {
	rng := fmt.Sprintf("%s!A%d", worksheet, rowIndex)
	vr := &sheets.ValueRange{Values: [][]interface{}{toCells(row)}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: updating %s row %d: %v", entity.ErrBackendUnavailable, worksheet, rowIndex, err)
	}
	return nil
}

// EnsureWorksheets cria as abas Contacts, Notes e Email_Log com seus
// cabeçalhos quando ainda não existem. Abas existentes ficam intocadas.
func (c *Client) EnsureWorksheets(ctx context.Context) error {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: opening spreadsheet: %v", entity.ErrBackendUnavailable, err)
	}

	existing := map[string]bool{}
	for _, s := range ss.Sheets {
		existing[s.Properties.Title] = true
	}

	worksheets := []struct {
		name    string
		headers []string
	}{
		{entity.WorksheetContacts, entity.ContactHeaders},
		{entity.WorksheetNotes, entity.NoteHeaders},
		{entity.WorksheetEmailLog, entity.EmailLogHeaders},
	}

	for _, ws := range worksheets {
		if existing[ws.name] {
			continue
		}
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: ws.name},
				},
			}},
		}
		if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("%w: creating worksheet %s: %v", entity.ErrBackendUnavailable, ws.name, err)
		}
		if err := c.AppendRow(ctx, ws.name, ws.headers); err != nil {
			return err
		}
	}
	return nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
