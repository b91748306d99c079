// Package importer loads tutor records from CSV files into the tutors collection.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/models"

	"github.com/gocarina/gocsv"
)

// Row is one CSV record. Columns are matched by header name, so order and
// extra columns do not matter.
type Row struct {
	FirstName  string `csv:"firstName"`
	LastName   string `csv:"lastName"`
	Email      string `csv:"email"`
	Phone      string `csv:"phone"`
	Categories string `csv:"categories"`
	Bio        string `csv:"bio"`
	HourlyRate string `csv:"hourlyRate"`
}

var ErrMissingRequiredFields = errors.New("missing required fields (firstName, lastName, or email)")

// TutorWriter is the part of the tutor repository the importer needs.
type TutorWriter interface {
	Create(ctx context.Context, tutor *models.Tutor) error
}

// Summary is the outcome of one import run.
type Summary struct {
	Imported int
	Errors   int
	Lines    int
}

func (s Summary) String() string {
	return fmt.Sprintf("imported=%d errors=%d lines=%d", s.Imported, s.Errors, s.Lines)
}

type Importer struct {
	tutors TutorWriter
	now    func() time.Time
}

func New(tutors TutorWriter) *Importer {
	return &Importer{tutors: tutors, now: time.Now}
}

// Import reads the header row and inserts every valid record. Bad rows are
// counted and skipped; only read failures and context cancellation abort.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (Summary, error) {
	var summary Summary

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var rows []*Row
	err := gocsv.UnmarshalCSV(reader, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return summary, nil
	}
	if err != nil {
		return summary, fmt.Errorf("read csv: %w", err)
	}
	summary.Lines = len(rows)

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		tutor, err := row.Tutor()
		if err != nil {
			logger.Warn("skipping row", "row", i+1, "error", err)
			summary.Errors++
			continue
		}
		tutor.CreatedAt = imp.now().UTC()

		if err := imp.tutors.Create(ctx, tutor); err != nil {
			logger.Error("insert failed", "row", i+1, "email", tutor.Email, "error", err)
			summary.Errors++
			continue
		}

		summary.Imported++
		logger.Info("imported tutor",
			"name", tutor.FirstName+" "+tutor.LastName,
			"email", tutor.Email,
		)
	}

	return summary, nil
}

// Tutor converts the row, trimming every value. An unparsable hourly rate
// is left at zero.
func (row *Row) Tutor() (*models.Tutor, error) {
	tutor := &models.Tutor{
		FirstName:  strings.TrimSpace(row.FirstName),
		LastName:   strings.TrimSpace(row.LastName),
		Email:      strings.TrimSpace(row.Email),
		Phone:      strings.TrimSpace(row.Phone),
		Bio:        strings.TrimSpace(row.Bio),
		Categories: SplitCategories(row.Categories),
	}
	if rate, err := strconv.ParseFloat(strings.TrimSpace(row.HourlyRate), 64); err == nil {
		tutor.HourlyRate = rate
	}

	if tutor.FirstName == "" || tutor.LastName == "" || tutor.Email == "" {
		return nil, ErrMissingRequiredFields
	}
	return tutor, nil
}

// SplitCategories splits on ';' or '|' and drops empty entries.
func SplitCategories(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == '|'
	})

	categories := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			categories = append(categories, part)
		}
	}
	return categories
}
