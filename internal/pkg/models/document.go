package models

import "time"

// Document is a shared Google Drive link
type Document struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	GoogleDriveLink string    `json:"google_drive_link" db:"google_drive_link"`
	FileID          *string   `json:"file_id" db:"file_id"`
	CreatedBy       string    `json:"created_by" db:"created_by"`
	IsActive        bool      `json:"-" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// DocumentRequest is the admin payload for creating or updating a document
type DocumentRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=255"`
	Description     string `json:"description" validate:"max=1000"`
	GoogleDriveLink string `json:"google_drive_link" validate:"required,drivelink"`
}
