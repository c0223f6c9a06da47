package usecase

import (
	"github.com/piresc/docshare/services/documents"
)

// DocumentsUC implements documents.DocumentsUC
type DocumentsUC struct {
	repo documents.DocumentsRepo
}

// NewDocumentsUC creates a new documents usecase instance
func NewDocumentsUC(repo documents.DocumentsRepo) *DocumentsUC {
	return &DocumentsUC{repo: repo}
}

var _ documents.DocumentsUC = (*DocumentsUC)(nil)
