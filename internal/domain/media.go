package domain

import "github.com/google/uuid"

// Attachment is a named in-memory file received with a lifecycle request.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Identity is the verified caller supplied by the authorization gate.
type Identity struct {
	UserID uuid.UUID
	Role   UserRole
}
