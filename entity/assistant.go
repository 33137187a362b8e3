package entity

import "time"

// AssistantRow is the stored record of a remote assistant, keyed by name.
type AssistantRow struct {
	UUID      string         `json:"uuid" bson:"uuid"`
	Name      string         `json:"name" bson:"name" validate:"required"`
	ID        string         `json:"id" bson:"id"`
	Model     string         `json:"model" bson:"model"`
	Active    bool           `json:"active" bson:"active"`
	Data      map[string]any `json:"data,omitempty" bson:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// AssistantConfig is the caller-supplied configuration of an assistant.
// Nil Tools, FileIDs and Metadata mean "not configured"; empty values are sent as empty.
type AssistantConfig struct {
	Name         string           `json:"name" validate:"required,max=256"`
	ID           string           `json:"id,omitempty"`
	Description  string           `json:"description,omitempty" validate:"max=512"`
	Instructions string           `json:"instructions,omitempty" validate:"max=32768"`
	Model        string           `json:"model,omitempty"`
	Tools        []map[string]any `json:"tools,omitempty" validate:"max=128"`
	FileIDs      []string         `json:"file_ids,omitempty" validate:"max=20"`
	FileURLs     []string         `json:"file_urls,omitempty" validate:"max=20,dive,url"`
	Metadata     map[string]any   `json:"metadata,omitempty" validate:"max=16"`
	HelpCenter   bool             `json:"help_center,omitempty"`
}

type AssistantDeleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
