package domain

import "time"

// Experience is a work-history entry.
type Experience struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Company            string    `json:"company" bson:"company"`
	CompanyEn          string    `json:"company_en,omitempty" bson:"company_en,omitempty"`
	Role               string    `json:"role" bson:"role"`
	RoleEn             string    `json:"role_en,omitempty" bson:"role_en,omitempty"`
	Period             string    `json:"period" bson:"period"`
	Responsibilities   []string  `json:"responsibilities" bson:"responsibilities"`
	ResponsibilitiesEn []string  `json:"responsibilities_en" bson:"responsibilities_en"`
	Technologies       []string  `json:"technologies" bson:"technologies"`
	DisplayOrder       int       `json:"display_order" bson:"display_order"`
	IsActive           bool      `json:"is_active" bson:"is_active"`
	IsCurrent          bool      `json:"is_current" bson:"is_current"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}
