package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nursery-api/internal/domain"
	"nursery-api/internal/repository"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	owner TEXT NOT NULL,
	date TEXT NOT NULL,
	type TEXT NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 0,
	supplier TEXT NOT NULL DEFAULT '',
	price REAL NOT NULL DEFAULT 0,
	lot_number TEXT NOT NULL DEFAULT '',
	expected_quantity INTEGER NOT NULL DEFAULT 0,
	actual_quantity INTEGER NOT NULL DEFAULT 0,
	parent_plant TEXT NOT NULL DEFAULT '',
	propagation_method TEXT NOT NULL DEFAULT '',
	destination TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_kind_owner ON records(kind, owner, created_at);
`

const recordColumns = `id, kind, owner, date, type, quantity,
supplier, price, lot_number,
expected_quantity, actual_quantity,
parent_plant, propagation_method,
destination, location, created_at`

// RecordRepository stores all six record kinds in one table; every query is
// filtered by (kind, owner).
type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) repository.RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRecordsTable); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

func (r *RecordRepository) Create(ctx context.Context, record *domain.Record) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO records (`+recordColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		string(record.Kind),
		record.Owner,
		record.Date,
		record.Type,
		record.Quantity,
		record.Supplier,
		record.Price,
		record.LotNumber,
		record.ExpectedQuantity,
		record.ActualQuantity,
		record.ParentPlant,
		record.PropagationMethod,
		record.Destination,
		record.Location,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (r *RecordRepository) ListByOwner(ctx context.Context, kind domain.RecordKind, owner string) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+recordColumns+`
FROM records
WHERE kind = ? AND owner = ?
ORDER BY created_at DESC, rowid DESC
LIMIT ?`,
		string(kind),
		owner,
		repository.ListLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) Delete(ctx context.Context, kind domain.RecordKind, owner, id string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM records
WHERE id = ? AND kind = ? AND owner = ?`,
		id,
		string(kind),
		owner,
	)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanRecord(row interface {
	Scan(dest ...any) error
}) (*domain.Record, error) {
	var record domain.Record
	var kind string
	if err := row.Scan(
		&record.ID,
		&kind,
		&record.Owner,
		&record.Date,
		&record.Type,
		&record.Quantity,
		&record.Supplier,
		&record.Price,
		&record.LotNumber,
		&record.ExpectedQuantity,
		&record.ActualQuantity,
		&record.ParentPlant,
		&record.PropagationMethod,
		&record.Destination,
		&record.Location,
		&record.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan record: %w", err)
	}
	record.Kind = domain.RecordKind(kind)
	return &record, nil
}
