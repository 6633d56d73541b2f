package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

// ClientRepository stores client records in insertion order.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	List(ctx context.Context) ([]domain.Client, error)
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository instantiates the postgres-backed repository.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (id, name, company, email, phone, status, since, revenue, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.pool.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Company,
		client.Email,
		client.Phone,
		client.Status,
		client.Since,
		client.Revenue,
		client.CreatedAt,
	)
	return err
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	const query = `
        SELECT id, name, company, email, phone, status, since, revenue, created_at
        FROM clients ORDER BY seq ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Status, &c.Since, &c.Revenue, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
