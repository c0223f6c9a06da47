package models

import "time"

// AuditLog records an action taken through the API
type AuditLog struct {
	ID         string    `json:"id" db:"id"`
	UserType   string    `json:"user_type" db:"user_type"`
	UserID     *string   `json:"user_id,omitempty" db:"user_id"`
	Action     string    `json:"action" db:"action"`
	Resource   *string   `json:"resource,omitempty" db:"resource"`
	ResourceID *string   `json:"resource_id,omitempty" db:"resource_id"`
	Details    string    `json:"details" db:"details"`
	IPAddress  string    `json:"ip_address" db:"ip_address"`
	UserAgent  string    `json:"user_agent" db:"user_agent"`
	StatusCode int       `json:"status_code" db:"status_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
