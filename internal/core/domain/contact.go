package domain

import "time"

// ContactMessage is a message submitted through the public contact form.
// Read and archived flags are admin-side inbox state.
type ContactMessage struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	ProjectType string    `json:"project_type,omitempty" bson:"project_type,omitempty"`
	Message     string    `json:"message" bson:"message"`
	IsRead      bool      `json:"is_read" bson:"is_read"`
	IsArchived  bool      `json:"is_archived" bson:"is_archived"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
