package sheetstore

import (
	"context"
	"fmt"
	"log"
	"sync"

	sheets "google.golang.org/api/sheets/v4"
)

// Bootstrap idempotently makes sure the task sheet and its header row
// exist. Every step reads before it writes, so repeated calls against an
// initialized spreadsheet perform no mutating calls; a successful run is
// additionally cached for the process lifetime so warmed processes skip
// the existence checks entirely. A failed run leaves the flag unset and
// the next call retries, repairing any partial initialization.
type Bootstrap struct {
	client *Client

	mu    sync.Mutex
	ready bool
}

func NewBootstrap(client *Client) *Bootstrap {
	return &Bootstrap{client: client}
}

func (b *Bootstrap) EnsureReady(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		return nil
	}

	srv, err := b.client.service(ctx)
	if err != nil {
		return err
	}

	spreadsheet, err := srv.Spreadsheets.Get(b.client.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("spreadsheet %s is not reachable: %w", b.client.spreadsheetID, err)
	}

	sheetID, found := findSheet(spreadsheet, b.client.sheetName)
	if !found {
		log.Printf("Sheet %q not found, creating...", b.client.sheetName)
		sheetID, err = b.createSheet(ctx, srv)
		if err != nil {
			return fmt.Errorf("create sheet %q: %w", b.client.sheetName, err)
		}
	}

	headerRange := fmt.Sprintf("%s!A1:F1", b.client.sheetName)
	header, err := srv.Spreadsheets.Values.Get(b.client.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}

	if len(header.Values) == 0 {
		log.Println("Header row not found, adding...")
		if err := b.writeHeader(ctx, srv, headerRange, sheetID); err != nil {
			return err
		}
	}

	b.ready = true
	return nil
}

func (b *Bootstrap) createSheet(ctx context.Context, srv *sheets.Service) (int64, error) {
	resp, err := srv.Spreadsheets.BatchUpdate(b.client.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: b.client.sheetName},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return 0, err
	}

	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil && resp.Replies[0].AddSheet.Properties != nil {
		return resp.Replies[0].AddSheet.Properties.SheetId, nil
	}
	return 0, nil
}

func (b *Bootstrap) writeHeader(ctx context.Context, srv *sheets.Service, headerRange string, sheetID int64) error {
	_, err := srv.Spreadsheets.Values.
		Update(b.client.spreadsheetID, headerRange, &sheets.ValueRange{Values: [][]interface{}{headerLabels}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	// Bold grey header, same look the spreadsheet had when it was
	// maintained by hand.
	_, err = srv.Spreadsheets.BatchUpdate(b.client.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   columnCount,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat:      &sheets.TextFormat{Bold: true},
							BackgroundColor: &sheets.Color{Red: 0.9, Green: 0.9, Blue: 0.9},
						},
					},
					Fields: "userEnteredFormat(textFormat,backgroundColor)",
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("format header row: %w", err)
	}
	return nil
}

func findSheet(spreadsheet *sheets.Spreadsheet, name string) (int64, bool) {
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return sh.Properties.SheetId, true
		}
	}
	return 0, false
}
