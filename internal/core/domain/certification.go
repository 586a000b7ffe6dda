package domain

import "time"

// Certification is a credential or award entry.
type Certification struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	TitleEn       string    `json:"title_en,omitempty" bson:"title_en,omitempty"`
	Issuer        string    `json:"issuer" bson:"issuer"`
	IssueDate     string    `json:"issue_date,omitempty" bson:"issue_date,omitempty"`
	CredentialID  string    `json:"credential_id,omitempty" bson:"credential_id,omitempty"`
	CredentialURL string    `json:"credential_url,omitempty" bson:"credential_url,omitempty"`
	DisplayOrder  int       `json:"display_order" bson:"display_order"`
	IsActive      bool      `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
