package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocument(t *testing.T) {
	tests := []struct {
		name       string
		link       string
		wantFileID *string
	}{
		{"file link", "https://drive.google.com/file/d/1AbC_d-9/view?usp=sharing", strPtr("1AbC_d-9")},
		{"open link", "https://drive.google.com/open?id=XyZ123", strPtr("XyZ123")},
		{"folder link", "https://drive.google.com/drive/folders/F0ld3r", strPtr("F0ld3r")},
		{"docs link without id", "https://docs.google.com/document/u/0/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return(nil)

			doc, err := f.uc.CreateDocument(context.Background(), "a1", &models.DocumentRequest{
				Title:           "  Handbook <b>2024</b> ",
				Description:     "Team handbook",
				GoogleDriveLink: tt.link,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, doc.ID)
			assert.Equal(t, "Handbook b2024/b", doc.Title)
			assert.Equal(t, "a1", doc.CreatedBy)
			assert.True(t, doc.IsActive)
			assert.Equal(t, tt.wantFileID, doc.FileID)
		})
	}
}

func TestUpdateDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites fields", func(t *testing.T) {
		f := newFixture(t)
		existing := &models.Document{ID: "d1", Title: "Old", IsActive: true, CreatedBy: "a1"}
		f.repo.EXPECT().GetActiveDocument(ctx, "d1").Return(existing, nil)
		f.repo.EXPECT().UpdateDocument(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, d *models.Document) error {
				assert.Equal(t, "New", d.Title)
				assert.Equal(t, testNow, d.UpdatedAt)
				return nil
			})

		doc, err := f.uc.UpdateDocument(ctx, "d1", &models.DocumentRequest{
			Title:           "New",
			GoogleDriveLink: "https://docs.google.com/document/d/Doc42/edit",
		})
		require.NoError(t, err)
		assert.Equal(t, "a1", doc.CreatedBy)
		require.NotNil(t, doc.FileID)
		assert.Equal(t, "Doc42", *doc.FileID)
	})

	t.Run("missing document", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetActiveDocument(ctx, "d9").Return(nil, apperror.New(apperror.KindNotFound, "document not found"))

		_, err := f.uc.UpdateDocument(ctx, "d9", &models.DocumentRequest{Title: "x"})
		assert.Equal(t, "Document not found", apperror.PublicMessage(err))
	})
}

func TestListAndDeleteDocuments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().ListActiveDocuments(ctx, 0, 5).Return([]*models.Document{{ID: "d1"}}, 1, nil)
	docs, pagination, err := f.uc.ListDocuments(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, 1, pagination.Pages)

	f.repo.EXPECT().SoftDeleteDocument(ctx, "d1").Return(nil)
	require.NoError(t, f.uc.DeleteDocument(ctx, "d1"))

	f.repo.EXPECT().SoftDeleteDocument(ctx, "d1").Return(apperror.New(apperror.KindNotFound, "document not found"))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(f.uc.DeleteDocument(ctx, "d1")))
}

func strPtr(s string) *string { return &s }
