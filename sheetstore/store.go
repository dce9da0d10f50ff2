package sheetstore

import (
	"context"
	"fmt"
	"time"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

// Column layout of the task sheet, row 1 is the header:
// A Timestamp | B Title | C Description | D Status | E Scheduled Date | F Task ID
const (
	statusColumn    = "D"
	columnCount     = 6
	timestampLayout = "01/02/2006, 15:04:05"
)

var headerLabels = []interface{}{"Timestamp", "Title", "Description", "Status", "Scheduled Date", "Task ID"}

// Store reads and writes task rows. Every operation is a single remote
// call with no retry; failures are wrapped and surfaced to the caller.
type Store struct {
	client *Client
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

func (s *Store) dataRange() string {
	return s.client.sheetName + "!A:F"
}

// Append stamps the task with the server clock and appends it to the end
// of the sheet. There is no insertion-order control beyond "append".
func (s *Store) Append(ctx context.Context, task models.Task) (models.Task, error) {
	srv, err := s.client.service(ctx)
	if err != nil {
		return models.Task{}, err
	}

	task.Timestamp = time.Now().Format(timestampLayout)
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	row := []interface{}{task.Timestamp, task.Title, task.Description, string(task.Status), task.ScheduledDate, task.ID}
	_, err = srv.Spreadsheets.Values.
		Append(s.client.spreadsheetID, s.dataRange(), &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return models.Task{}, fmt.Errorf("Google Sheets error: %w", err)
	}
	return task, nil
}

// UpdateStatus overwrites the status cell of the row carrying the given
// task ID. Unknown IDs are rejected with ErrRowNotFound rather than
// letting the remote store silently create a row.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	srv, err := s.client.service(ctx)
	if err != nil {
		return err
	}

	row, err := s.findRow(ctx, id)
	if err != nil {
		return err
	}

	cellRange := fmt.Sprintf("%s!%s%d", s.client.sheetName, statusColumn, row)
	_, err = srv.Spreadsheets.Values.
		Update(s.client.spreadsheetID, cellRange, &sheets.ValueRange{Values: [][]interface{}{{string(status)}}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update status cell %s: %w", cellRange, err)
	}
	return nil
}

// List scans the full data range, skips the header row and maps each row
// positionally. Short rows degrade to empty fields instead of erroring.
func (s *Store) List(ctx context.Context) ([]models.Task, error) {
	srv, err := s.client.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.
		Get(s.client.spreadsheetID, s.dataRange()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read task rows: %w", err)
	}

	if len(resp.Values) <= 1 {
		return []models.Task{}, nil
	}

	tasks := make([]models.Task, 0, len(resp.Values)-1)
	for i, row := range resp.Values[1:] {
		tasks = append(tasks, taskFromRow(row, i+2))
	}
	return tasks, nil
}

func (s *Store) findRow(ctx context.Context, id string) (int, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t.Row, nil
		}
	}
	return 0, fmt.Errorf("%w: id %s", ErrRowNotFound, id)
}

func taskFromRow(row []interface{}, rowNumber int) models.Task {
	status := cell(row, 3)
	if status == "" {
		status = string(models.StatusPending)
	}
	return models.Task{
		ID:            cell(row, 5),
		Row:           rowNumber,
		Timestamp:     cell(row, 0),
		Title:         cell(row, 1),
		Description:   cell(row, 2),
		Status:        models.TaskStatus(status),
		ScheduledDate: cell(row, 4),
	}
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}
