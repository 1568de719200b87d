/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/glucolens/glucolens/risk"
)

// DefaultHistoryLimit caps ListAssessments when no limit is given.
const DefaultHistoryLimit = 50

// SavedAssessment is an assessment stored in the history table.
type SavedAssessment struct {
	ID         uuid.UUID
	Label      *string
	Assessment risk.Assessment
	CreatedAt  time.Time
}

// Title is the label, or the creation time when no label was given.
func (s SavedAssessment) Title() string {
	if s.Label != nil && strings.TrimSpace(*s.Label) != "" {
		return *s.Label
	}

	return s.CreatedAt.Format("2006-01-02 15:04")
}

const assessmentColumns = `id, label, probability, bmi, glucose, age, insulin,
	pregnancies, blood_pressure, skin_thickness, dpf, created_at`

func scanAssessment(row pgx.Row) (*SavedAssessment, error) {
	var (
		s SavedAssessment
		m = &s.Assessment.Measurements
	)

	err := row.Scan(
		&s.ID, &s.Label, &s.Assessment.Probability,
		&m.BMI, &m.Glucose, &m.Age, &m.Insulin,
		&m.Pregnancies, &m.BloodPressure, &m.SkinThickness,
		&s.Assessment.DPF, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// CreateAssessment stores an assessment and returns its id.
func CreateAssessment(ctx context.Context, label string, a risk.Assessment) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	var labelArg *string
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		labelArg = &trimmed
	}

	m := a.Measurements
	query := `
		INSERT INTO assessments (label, probability, bmi, glucose, age, insulin,
			pregnancies, blood_pressure, skin_thickness, dpf)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id uuid.UUID

	err := pool.QueryRow(ctx, query,
		labelArg, a.Probability,
		m.BMI, m.Glucose, m.Age, m.Insulin,
		m.Pregnancies, m.BloodPressure, m.SkinThickness, a.DPF,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	logger.Info("Stored assessment", "id", id, "probability", a.Probability)

	return id, nil
}

// GetAssessment returns a stored assessment by id.
func GetAssessment(ctx context.Context, id string) (*SavedAssessment, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidAssessmentID
	}

	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1`

	s, err := scanAssessment(pool.QueryRow(ctx, query, parsed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}

		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	return s, nil
}

// ListAssessments returns the newest stored assessments first.
func ListAssessments(ctx context.Context, limit int) ([]SavedAssessment, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := `SELECT ` + assessmentColumns + ` FROM assessments ORDER BY created_at DESC, id LIMIT $1`

	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var out []SavedAssessment

	for rows.Next() {
		s, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}

		out = append(out, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessments: %w", err)
	}

	return out, nil
}

// DeleteAssessment removes a stored assessment.
func DeleteAssessment(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidAssessmentID
	}

	tag, err := pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, parsed)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAssessmentNotFound
	}

	return nil
}
