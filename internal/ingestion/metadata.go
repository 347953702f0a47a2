package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// shortHashLen is the number of hex characters kept for artifact hashes
const shortHashLen = 16

// Metadata contains metadata about an ingested job description
type Metadata struct {
	Source    string `json:"source,omitempty"`
	Format    string `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source string, format string) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ComputeHash(content),
	}
}

// ComputeHash computes SHA256 hash of content and returns hex string
func ComputeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ShortHash returns the hash prefix used in artifacts
func (m *Metadata) ShortHash() string {
	if len(m.Hash) <= shortHashLen {
		return m.Hash
	}
	return m.Hash[:shortHashLen]
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
