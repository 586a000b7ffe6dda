package domain

import "time"

// Project is a portfolio work item. Inactive projects are hidden from
// non-admin callers; listings are ordered by DisplayOrder ascending.
type Project struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	TitleEn       string    `json:"title_en,omitempty" bson:"title_en,omitempty"`
	Category      string    `json:"category" bson:"category"`
	Client        string    `json:"client,omitempty" bson:"client,omitempty"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	DescriptionEn string    `json:"description_en,omitempty" bson:"description_en,omitempty"`
	Software      []string  `json:"software" bson:"software"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	VideoURL      string    `json:"video_url,omitempty" bson:"video_url,omitempty"`
	Featured      bool      `json:"featured" bson:"featured"`
	DisplayOrder  int       `json:"display_order" bson:"display_order"`
	IsActive      bool      `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
