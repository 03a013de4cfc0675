// Package sheets replaces the content of a Google spreadsheet with exported rows.
package sheets

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/pkg/metrics"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const DefaultSheet = "Orders"

var ErrNotConfigured = errors.New("google sheets export is not configured")

type valuesAPI interface {
	Clear(ctx context.Context, spreadsheetID, rng string) error
	Update(ctx context.Context, spreadsheetID, rng string, values [][]any) error
}

// Writer clears the sheet and writes the rows from A1.
type Writer struct {
	api           valuesAPI
	spreadsheetID string
	sheet         string
}

// NewWriter authenticates with a service account credentials file.
func NewWriter(ctx context.Context, credentialsFile, spreadsheetID, sheet string) (*Writer, error) {
	if credentialsFile == "" || spreadsheetID == "" {
		return nil, ErrNotConfigured
	}

	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return newWriter(serviceValues{srv: srv}, spreadsheetID, sheet), nil
}

func newWriter(api valuesAPI, spreadsheetID, sheet string) *Writer {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Writer{api: api, spreadsheetID: spreadsheetID, sheet: sheet}
}

// ReplaceRows overwrites the sheet with rows, the first of which is the header.
func (w *Writer) ReplaceRows(ctx context.Context, rows [][]string) error {
	if err := w.api.Clear(ctx, w.spreadsheetID, w.sheet); err != nil {
		return fmt.Errorf("clear sheet %s: %w", w.sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	if err := w.api.Update(ctx, w.spreadsheetID, w.sheet+"!A1", values); err != nil {
		return fmt.Errorf("write sheet %s: %w", w.sheet, err)
	}

	metrics.ExportRowsTotal.WithLabelValues("sheets").Add(float64(len(rows) - 1))
	return nil
}

type serviceValues struct {
	srv *gsheets.Service
}

func (s serviceValues) Clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := s.srv.Spreadsheets.Values.Clear(spreadsheetID, rng, &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

func (s serviceValues) Update(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	_, err := s.srv.Spreadsheets.Values.Update(spreadsheetID, rng, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}
