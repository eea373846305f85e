package store

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/varnote/nmdscan/internal/transcript"
)

// TranscriptCache manages gob-serialized transcript data on disk:
//
//	<dir>/transcripts.gob
//
// Transcripts are keyed by transcript ID and loaded once per run.
type TranscriptCache struct {
	dir string
}

// NewTranscriptCache creates a transcript cache for the given directory.
func NewTranscriptCache(dir string) *TranscriptCache {
	return &TranscriptCache{dir: dir}
}

func (tc *TranscriptCache) gobPath() string {
	return filepath.Join(tc.dir, "transcripts.gob")
}

// Load reads serialized transcripts from disk, keyed by transcript ID.
func (tc *TranscriptCache) Load() (map[string]*transcript.Transcript, error) {
	f, err := os.Open(tc.gobPath())
	if err != nil {
		return nil, fmt.Errorf("open transcript cache: %w", err)
	}
	defer f.Close()

	var data map[string]*transcript.Transcript
	if err := gob.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode transcript cache: %w", err)
	}
	return data, nil
}

// Write serializes transcripts to disk, replacing any existing cache.
// Transcripts failing validation are rejected rather than persisted.
func (tc *TranscriptCache) Write(transcripts []*transcript.Transcript) error {
	data := make(map[string]*transcript.Transcript, len(transcripts))
	for _, t := range transcripts {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("refusing to cache: %w", err)
		}
		data[t.ID] = t
	}

	if err := os.MkdirAll(tc.dir, 0755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	f, err := os.Create(tc.gobPath())
	if err != nil {
		return fmt.Errorf("create transcript cache: %w", err)
	}

	if err := gob.NewEncoder(f).Encode(data); err != nil {
		f.Close()
		os.Remove(tc.gobPath())
		return fmt.Errorf("encode transcript cache: %w", err)
	}
	return f.Close()
}

// Clear removes the cached transcript file.
func (tc *TranscriptCache) Clear() {
	os.Remove(tc.gobPath())
}
