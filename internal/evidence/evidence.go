// Package evidence turns uploaded proofs into content-addressed references.
package evidence

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/mmynk/peticao/internal/models"
)

// MaxSize is the largest accepted file, 20 MiB.
const MaxSize = 20 * 1024 * 1024

var (
	ErrEmpty    = errors.New("evidence file is empty")
	ErrTooLarge = fmt.Errorf("evidence file exceeds %d bytes", MaxSize)
)

// Upload is a file submitted as proof.
type Upload struct {
	Name        string
	MediaType   string // detected from content when empty
	LinkedClaim string
	Description string
	Content     []byte
}

// Digest returns the hex BLAKE2b-256 digest of content.
func Digest(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Category groups a media type the way the evidence list shows it.
func Category(mediaType string) string {
	switch {
	case strings.Contains(mediaType, "image"):
		return "Imagem"
	case strings.Contains(mediaType, "pdf"):
		return "PDF"
	case strings.Contains(mediaType, "video"):
		return "Vídeo"
	case strings.Contains(mediaType, "audio"):
		return "Áudio"
	}
	return "Documento"
}

// New builds the reference for an upload. The content itself is stored
// separately under the returned Digest.
func New(u Upload) (models.EvidenceRef, error) {
	if len(u.Content) == 0 {
		return models.EvidenceRef{}, ErrEmpty
	}
	if len(u.Content) > MaxSize {
		return models.EvidenceRef{}, ErrTooLarge
	}

	mediaType := u.MediaType
	if mediaType == "" {
		mediaType = http.DetectContentType(u.Content)
	}

	return models.EvidenceRef{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(u.Name),
		Category:    Category(mediaType),
		MediaType:   mediaType,
		Size:        int64(len(u.Content)),
		Digest:      Digest(u.Content),
		LinkedClaim: u.LinkedClaim,
		Description: u.Description,
	}, nil
}

// Verify reports whether content matches ref.
func Verify(ref models.EvidenceRef, content []byte) bool {
	return int64(len(content)) == ref.Size && Digest(content) == ref.Digest
}
