package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"nursery-api/internal/domain"
	"nursery-api/internal/repository"
	"nursery-api/internal/storage"
)

// exportSection fixes one CSV section: its banner, source stream, and the
// column subset rendered for that kind. Distributed seedlings are deliberately
// absent; the export covers nursery stock movements only.
type exportSection struct {
	title   string
	kind    domain.RecordKind
	columns []string
}

var exportSections = []exportSection{
	{"SEEDLINGS RECEIVED", domain.KindSeedlingsReceived, []string{"date", "type", "supplier", "price", "lot_number", "quantity"}},
	{"DELIVERY NOTES", domain.KindDeliveryNotes, []string{"date", "type", "expected_quantity", "actual_quantity"}},
	{"DEAD SEEDLINGS", domain.KindDeadSeedlings, []string{"date", "type", "quantity"}},
	{"DISCARDED SEEDLINGS", domain.KindDiscardedSeedlings, []string{"date", "type", "quantity"}},
	{"NURSERY PRODUCED", domain.KindNurseryProduced, []string{"date", "type", "quantity", "parent_plant", "propagation_method"}},
}

// ExportService renders an owner's records as one multi-section CSV document.
type ExportService interface {
	CSV(ctx context.Context, owner string) ([]byte, string, error)
}

type exportService struct {
	records repository.RecordRepository
	archive storage.Service
	bucket  string
	prefix  string
	logger  *logrus.Logger
}

// NewExportService builds the export formatter. archive may be nil, in which
// case generated exports are not copied to object storage.
func NewExportService(records repository.RecordRepository, archive storage.Service, bucket, prefix string, logger *logrus.Logger) ExportService {
	return &exportService{
		records: records,
		archive: archive,
		bucket:  bucket,
		prefix:  prefix,
		logger:  logger,
	}
}

func (s *exportService) CSV(ctx context.Context, owner string) ([]byte, string, error) {
	var buf bytes.Buffer

	for i, section := range exportSections {
		if i == 0 {
			fmt.Fprintf(&buf, "\n=== %s ===\n", section.title)
		} else {
			fmt.Fprintf(&buf, "\n\n=== %s ===\n", section.title)
		}

		records, err := s.records.ListByOwner(ctx, section.kind, owner)
		if err != nil {
			return nil, "", err
		}
		if len(records) == 0 {
			continue
		}

		w := csv.NewWriter(&buf)
		if err := w.Write(section.columns); err != nil {
			return nil, "", fmt.Errorf("write csv header: %w", err)
		}
		for r := range records {
			row := make([]string, len(section.columns))
			for j, col := range section.columns {
				row[j] = fieldValue(&records[r], col)
			}
			if err := w.Write(row); err != nil {
				return nil, "", fmt.Errorf("write csv row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", fmt.Errorf("flush csv: %w", err)
		}
	}

	filename := fmt.Sprintf("nursery_data_%s.csv", time.Now().Format("20060102"))
	s.archiveExport(ctx, filename, buf.Bytes())

	return buf.Bytes(), filename, nil
}

// archiveExport copies the document to object storage when configured.
// Failures are logged and swallowed; the export itself must still succeed.
func (s *exportService) archiveExport(ctx context.Context, filename string, data []byte) {
	if s.archive == nil || s.bucket == "" {
		return
	}
	location, err := s.archive.PutObject(ctx, storage.PutOptions{
		Bucket:      s.bucket,
		KeyPrefix:   s.prefix,
		Name:        filename,
		ContentType: "text/csv",
	}, bytes.NewReader(data))
	if err != nil {
		if s.logger != nil {
			s.logger.Warnf("archive export: %v", err)
		}
		return
	}
	if s.logger != nil {
		s.logger.Infof("archived export to %s", location)
	}
}

func fieldValue(record *domain.Record, column string) string {
	switch column {
	case "date":
		return record.Date
	case "type":
		return record.Type
	case "quantity":
		return strconv.Itoa(record.Quantity)
	case "supplier":
		return record.Supplier
	case "price":
		return strconv.FormatFloat(record.Price, 'g', -1, 64)
	case "lot_number":
		return record.LotNumber
	case "expected_quantity":
		return strconv.Itoa(record.ExpectedQuantity)
	case "actual_quantity":
		return strconv.Itoa(record.ActualQuantity)
	case "parent_plant":
		return record.ParentPlant
	case "propagation_method":
		return record.PropagationMethod
	}
	return ""
}
