package repository

import (
	"context"

	"github.com/opentender/radar/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TenderRepository - интерфейс для работы с тендерами.
type TenderRepository interface {
	GetAllTenders(ctx context.Context) ([]models.Tender, error)
	GetTenderByID(ctx context.Context, tenderID string) (*models.Tender, error)
	CreateTender(ctx context.Context, tender models.Tender) error
	ReplaceAllTenders(ctx context.Context, tenders []models.Tender) error
	GetCountries(ctx context.Context) ([]string, error)
	GetSectors(ctx context.Context) ([]string, error)
}

const tenderColumns = `id, title, description, country, sector, cpv_code, budget, currency, status, contract_type, published_date, deadline, score, created_at`

// PostgresTenderRepository - реализация TenderRepository для базы данных.
type PostgresTenderRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresTenderRepository создаёт новый экземпляр PostgresTenderRepository.
func NewPostgresTenderRepository(db *pgxpool.Pool) *PostgresTenderRepository {
	return &PostgresTenderRepository{DB: db}
}

// GetAllTenders возвращает все тендеры с сохранёнными скорами.
// Порядок не гарантируется: сортировку выполняет движок запросов.
func (r *PostgresTenderRepository) GetAllTenders(ctx context.Context) ([]models.Tender, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+tenderColumns+` FROM tender`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenders []models.Tender
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return nil, err
		}
		tenders = append(tenders, tender)
	}
	return tenders, rows.Err()
}

// GetTenderByID возвращает тендер по идентификатору.
func (r *PostgresTenderRepository) GetTenderByID(ctx context.Context, tenderID string) (*models.Tender, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+tenderColumns+` FROM tender WHERE id = $1`, tenderID)
	tender, err := scanTender(row)
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// CreateTender сохраняет новый тендер.
func (r *PostgresTenderRepository) CreateTender(ctx context.Context, tender models.Tender) error {
	_, err := r.DB.Exec(ctx, insertTenderQuery, insertTenderArgs(tender)...)
	return err
}

// ReplaceAllTenders перезаписывает таблицу тендеров одним пакетом в
// транзакции. Используется генератором демонстрационных данных.
func (r *PostgresTenderRepository) ReplaceAllTenders(ctx context.Context, tenders []models.Tender) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM tender`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, tender := range tenders {
		batch.Queue(insertTenderQuery, insertTenderArgs(tender)...)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetCountries возвращает список уникальных стран в хранилище.
func (r *PostgresTenderRepository) GetCountries(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, `SELECT DISTINCT country FROM tender ORDER BY country`)
}

// GetSectors возвращает список уникальных секторов в хранилище.
func (r *PostgresTenderRepository) GetSectors(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, `SELECT DISTINCT sector FROM tender ORDER BY sector`)
}

func (r *PostgresTenderRepository) distinctColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

const insertTenderQuery = `
       INSERT INTO tender (` + tenderColumns + `)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
   `

func insertTenderArgs(t models.Tender) []interface{} {
	return []interface{}{
		t.ID,
		t.Title,
		t.Description,
		t.Country,
		t.Sector,
		t.CPVCode,
		t.Budget,
		t.Currency,
		t.Status,
		t.ContractType,
		t.PublishedDate,
		t.Deadline,
		t.Score,
		t.CreatedAt,
	}
}

func scanTender(row pgx.Row) (models.Tender, error) {
	var t models.Tender
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Country,
		&t.Sector,
		&t.CPVCode,
		&t.Budget,
		&t.Currency,
		&t.Status,
		&t.ContractType,
		&t.PublishedDate,
		&t.Deadline,
		&t.Score,
		&t.CreatedAt,
	)
	return t, err
}
