package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

// ProjectFilter narrows project listings and counts.
type ProjectFilter struct {
	Status *domain.ProjectStatus
}

func (f ProjectFilter) matches(project *domain.Project) bool {
	return f.Status == nil || project.Status == *f.Status
}

// ProjectRepository stores project records in insertion order.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
	Count(ctx context.Context, filter ProjectFilter) (int, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates the postgres-backed repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (id, name, client, type, status, progress, start_date, end_date, value, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Client,
		project.Type,
		project.Status,
		project.Progress,
		project.StartDate,
		project.EndDate,
		project.Value,
		project.CreatedAt,
	)
	return err
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `
        SELECT id, name, client, type, status, progress, start_date, end_date, value, created_at
        FROM projects ORDER BY seq ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.Type, &p.Status, &p.Progress, &p.StartDate, &p.EndDate, &p.Value, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Count(ctx context.Context, filter ProjectFilter) (int, error) {
	query := `SELECT COUNT(*) FROM projects`
	args := []any{}
	if filter.Status != nil {
		query += ` WHERE status=$1`
		args = append(args, *filter.Status)
	}
	var n int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
