// Package artifact persists rendered transcript outputs (SRT, VTT, raw
// provider payload) to the object store and hands back the URLs stored on
// the transcript row.
package artifact

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/openscribe/scribe/pkg/config"
)

// Artifact object names under a task's key prefix.
const (
	NameSRT = "output.srt"
	NameVTT = "output.vtt"
	NameRaw = "raw.json"
)

// Store writes transcript artifacts to the configured object store. The
// backend is scheme-addressed (file://, s3://, gs://, mem://), so local
// runs and tests use the same code path as production.
type Store struct {
	fs        afs.Service
	baseURL   string
	publicURL string
}

// NewStore creates a store from config. PublicURL, when set, replaces the
// backend base URL in returned links (CDN or proxy in front of the bucket).
func NewStore(cfg *config.ArtifactConfig) *Store {
	return &Store{
		fs:        afs.New(),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}
}

// TranscriptKey returns the object key for one artifact of a task.
func TranscriptKey(taskID, name string) string {
	return fmt.Sprintf("transcripts/%s/%s", taskID, name)
}

// Put uploads data under key and returns the public URL of the object.
func (s *Store) Put(ctx context.Context, key string, data []byte) (string, error) {
	dest := s.baseURL + "/" + key
	if err := s.fs.Upload(ctx, dest, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.URL(key), nil
}

// URL returns the public URL for an object key without touching the store.
func (s *Store) URL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return s.baseURL + "/" + key
}
