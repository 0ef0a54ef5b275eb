package render

import (
	"encoding/json"
	"time"
)

// Document is the JSON export envelope.
type Document struct {
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Log       []string  `json:"log,omitempty"`
	Scene     Scene     `json:"scene"`
}

// RenderJSON serializes the document as indented JSON.
func RenderJSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
