package domain

import "time"

// SiteSetting is a key-value pair of site configuration. Values are free-form
// JSON documents owned by the admin UI.
type SiteSetting struct {
	Key       string    `json:"key" bson:"_id"`
	Value     any       `json:"value" bson:"value"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
