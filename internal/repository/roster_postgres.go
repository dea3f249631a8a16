package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/service"
)

type PostgresRosterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRosterRepository(db *pgxpool.Pool) service.RosterRepository {
	return &PostgresRosterRepository{db: db}
}

// ListSubjects возвращает всех туристов ростера
func (r *PostgresRosterRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	query := `
		SELECT
			id,
			name,
			location_label,
			safety_score,
			status,
			last_update,
			solo_flag,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude
		FROM subjects
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		var status string
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Location,
			&s.SafetyScore,
			&status,
			&s.LastUpdate,
			&s.SoloFlag,
			&s.Coordinates.Lat,
			&s.Coordinates.Lng,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		s.Status = models.SubjectStatus(status)
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error subject list iteration: %w", err)
	}
	return subjects, nil
}

// ListAlerts возвращает оповещения в порядке добавления
func (r *PostgresRosterRepository) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	query := `
		SELECT id, message
		FROM alerts
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.Message); err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert list iteration: %w", err)
	}
	return alerts, nil
}
