package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

// InquiryFilter narrows inquiry listings. A nil Status matches every inquiry.
type InquiryFilter struct {
	Status *domain.InquiryStatus
}

func (f InquiryFilter) matches(inquiry *domain.Inquiry) bool {
	return f.Status == nil || inquiry.Status == *f.Status
}

// InquiryRepository stores contact-form submissions. List returns the most
// recent inquiry first.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	List(ctx context.Context, filter InquiryFilter) ([]domain.Inquiry, error)
	Count(ctx context.Context, filter InquiryFilter) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type inquiryRepository struct {
	pool *pgxpool.Pool
}

// NewInquiryRepository instantiates the postgres-backed repository.
func NewInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &inquiryRepository{pool: pool}
}

const inquiryColumns = `id, name, company, email, service, message, status, created_at`

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	const query = `
        INSERT INTO inquiries (id, name, company, email, service, message, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.pool.Exec(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Company,
		inquiry.Email,
		inquiry.Service,
		inquiry.Message,
		inquiry.Status,
		inquiry.CreatedAt,
	)
	return err
}

func (r *inquiryRepository) List(ctx context.Context, filter InquiryFilter) ([]domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}
	if filter.Status != nil {
		query += ` WHERE status=$1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY seq DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, *inquiry)
	}
	return inquiries, rows.Err()
}

func (r *inquiryRepository) Count(ctx context.Context, filter InquiryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM inquiries`
	args := []any{}
	if filter.Status != nil {
		query += ` WHERE status=$1`
		args = append(args, *filter.Status)
	}
	var n int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id=$1`
	inquiry, err := scanInquiry(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInquiryNotFound
	}
	return inquiry, err
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	query := `UPDATE inquiries SET status=$1 WHERE id=$2 RETURNING ` + inquiryColumns
	inquiry, err := scanInquiry(r.pool.QueryRow(ctx, query, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInquiryNotFound
	}
	return inquiry, err
}

func (r *inquiryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

func scanInquiry(row pgx.Row) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	if err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Company,
		&inquiry.Email,
		&inquiry.Service,
		&inquiry.Message,
		&inquiry.Status,
		&inquiry.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inquiry, nil
}
