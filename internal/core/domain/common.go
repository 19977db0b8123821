package domain

import "time"

// AuditFields holds the standard timestamps stamped by the document store on
// every create and update.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
