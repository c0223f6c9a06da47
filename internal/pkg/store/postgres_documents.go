package store

import (
	"context"
	"strings"

	"github.com/piresc/docshare/internal/pkg/models"
)

const documentColumns = `id, title, description, google_drive_link, file_id, created_by, is_active, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListActiveDocuments returns a page of active documents, newest first, and the total count
func (p *Postgres) ListActiveDocuments(ctx context.Context, offset, limit int) ([]*models.Document, int, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var total int
	if err := p.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM documents WHERE is_active = TRUE`); err != nil {
		return nil, 0, translate("count documents", "document", err)
	}

	docs := []*models.Document{}
	err := p.db.SelectContext(ctx, &docs,
		`SELECT `+documentColumns+` FROM documents WHERE is_active = TRUE
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, translate("list documents", "document", err)
	}
	return docs, total, nil
}

// GetActiveDocument retrieves an active document by id
func (p *Postgres) GetActiveDocument(ctx context.Context, id string) (*models.Document, error) {
	if !validID(id) {
		return nil, notFound("document")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var doc models.Document
	err := p.db.GetContext(ctx, &doc,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return nil, translate("get document", "document", err)
	}
	return &doc, nil
}

// SearchDocuments matches the query against title or description, case-insensitively
func (p *Postgres) SearchDocuments(ctx context.Context, query string, limit int) ([]*models.Document, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	pattern := "%" + likeEscaper.Replace(query) + "%"
	docs := []*models.Document{}
	err := p.db.SelectContext(ctx, &docs,
		`SELECT `+documentColumns+` FROM documents
		 WHERE is_active = TRUE AND (title ILIKE $1 OR description ILIKE $1)
		 ORDER BY created_at DESC LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, translate("search documents", "document", err)
	}
	return docs, nil
}

// CreateDocument inserts a document
func (p *Postgres) CreateDocument(ctx context.Context, doc *models.Document) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx,
		`INSERT INTO documents (id, title, description, google_drive_link, file_id, created_by, is_active, created_at, updated_at)
		 VALUES (:id, :title, :description, :google_drive_link, :file_id, :created_by, :is_active, :created_at, :updated_at)`,
		doc)
	return translate("create document", "document", err)
}

// UpdateDocument rewrites the editable fields of an active document
func (p *Postgres) UpdateDocument(ctx context.Context, doc *models.Document) error {
	if !validID(doc.ID) {
		return notFound("document")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	res, err := p.db.NamedExecContext(ctx,
		`UPDATE documents SET title = :title, description = :description, google_drive_link = :google_drive_link,
		 file_id = :file_id, updated_at = :updated_at WHERE id = :id AND is_active = TRUE`, doc)
	if err != nil {
		return translate("update document", "document", err)
	}
	if rows, err := res.RowsAffected(); err != nil || rows == 0 {
		if err != nil {
			return translate("update document", "document", err)
		}
		return notFound("document")
	}
	return nil
}

// SoftDeleteDocument hides a document without removing the row
func (p *Postgres) SoftDeleteDocument(ctx context.Context, id string) error {
	if !validID(id) {
		return notFound("document")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	res, err := p.db.ExecContext(ctx,
		`UPDATE documents SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return translate("delete document", "document", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return translate("delete document", "document", err)
	}
	if rows == 0 {
		return notFound("document")
	}
	return nil
}
