package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/peticao/internal/storage"
)

// PutEvidenceBlob stores content under digest. Existing digests are kept.
func (s *SQLiteStore) PutEvidenceBlob(ctx context.Context, digest string, content []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO evidence_blobs (digest, content, size, created_at) VALUES (?, ?, ?, ?) ON CONFLICT(digest) DO NOTHING",
		digest, content, len(content), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store evidence: %w", err)
	}
	return nil
}

// GetEvidenceBlob returns the content stored under digest.
func (s *SQLiteStore) GetEvidenceBlob(ctx context.Context, digest string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT content FROM evidence_blobs WHERE digest = ?",
		digest,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("evidence %s: %w", digest, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evidence: %w", err)
	}
	return content, nil
}
