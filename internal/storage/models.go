package storage

import "time"

// ConversionRecord represents one completed markdown-to-document conversion.
type ConversionRecord struct {
	ID         string    // UUID
	Title      string    // Document title
	DocumentID string    // ID assigned by the document backend
	SourceHash string    // SHA256 hex string of the markdown input
	BlockCount int       // Number of structural blocks parsed from the input
	CreatedAt  time.Time
}
