package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/mmynk/peticao/internal/models"
	"github.com/mmynk/peticao/internal/storage"
)

// CreateCase persists a new case to the database.
func (s *SQLiteStore) CreateCase(ctx context.Context, c *models.Case) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if c.CreatedAt == 0 {
		c.CreatedAt = now
	}
	c.UpdatedAt = c.CreatedAt
	if c.Status == "" {
		c.Status = models.StatusDraft
	}
	if c.Title == "" {
		c.Title = generateTitle(time.Unix(c.CreatedAt, 0))
	}
	c.Version = 1

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode case: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO cases (id, title, status, value, data, created_at, updated_at, version) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Title, string(c.Status), c.Value, string(data), c.CreatedAt, c.UpdatedAt, c.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert case: %w", err)
	}

	return nil
}

// GetCase retrieves a case by ID.
func (s *SQLiteStore) GetCase(ctx context.Context, caseID string) (*models.Case, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM cases WHERE id = ?",
		caseID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("case %s: %w", caseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	return decodeCase(data)
}

// UpdateCase replaces an existing case if it is still at c.Version, and
// advances the version.
func (s *SQLiteStore) UpdateCase(ctx context.Context, c *models.Case) error {
	prevVersion, prevUpdated := c.Version, c.UpdatedAt
	c.Version++
	c.UpdatedAt = time.Now().Unix()

	data, err := json.Marshal(c)
	if err != nil {
		c.Version, c.UpdatedAt = prevVersion, prevUpdated
		return fmt.Errorf("failed to encode case: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE cases SET title = ?, status = ?, value = ?, data = ?, updated_at = ?, version = ? WHERE id = ? AND version = ?",
		c.Title, string(c.Status), c.Value, string(data), c.UpdatedAt, c.Version, c.ID, prevVersion,
	)
	if err != nil {
		c.Version, c.UpdatedAt = prevVersion, prevUpdated
		return fmt.Errorf("failed to update case: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		c.Version, c.UpdatedAt = prevVersion, prevUpdated
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		c.Version, c.UpdatedAt = prevVersion, prevUpdated
		return s.missingOrStale(ctx, c.ID)
	}

	return nil
}

// missingOrStale explains an update that matched no row.
func (s *SQLiteStore) missingOrStale(ctx context.Context, caseID string) error {
	var version int64
	err := s.db.QueryRowContext(ctx, "SELECT version FROM cases WHERE id = ?", caseID).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("case %s: %w", caseID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check case version: %w", err)
	}
	return fmt.Errorf("case %s is at version %d: %w", caseID, version, storage.ErrConflict)
}

// DeleteCase removes a case.
func (s *SQLiteStore) DeleteCase(ctx context.Context, caseID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cases WHERE id = ?", caseID)
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("case %s: %w", caseID, storage.ErrNotFound)
	}

	return nil
}

// ListCases returns cases, most recently updated first.
func (s *SQLiteStore) ListCases(ctx context.Context, opts storage.ListOptions) ([]*models.Case, error) {
	query := "SELECT data FROM cases"
	var args []any
	if opts.Status != "" {
		query += " WHERE status = ?"
		args = append(args, string(opts.Status))
	}
	query += " ORDER BY updated_at DESC, rowid DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		c, err := decodeCase(data)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cases: %w", err)
	}

	return cases, nil
}

func decodeCase(data string) (*models.Case, error) {
	c := &models.Case{}
	if err := json.Unmarshal([]byte(data), c); err != nil {
		return nil, fmt.Errorf("failed to decode case: %w", err)
	}
	return c, nil
}

// generateTitle names a case that has no parties yet.
func generateTitle(created time.Time) string {
	return fmt.Sprintf("Caso - %s", created.Format("02/01/2006"))
}
