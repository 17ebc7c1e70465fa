package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngvthanh/classform/internal/app/models"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestRenderCSV_EmptyReport(t *testing.T) {
	doc := RenderCSV(nil)

	require.True(t, strings.HasPrefix(doc, UTF8BOM), "document must start with a BOM")
	assert.Equal(t, UTF8BOM+Header+"\n", doc)
}

func TestRenderCSV_RowLayout(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := []models.SubmissionDetail{
		{
			Submission: models.Submission{
				ID:             7,
				StudentID:      int64Ptr(1),
				BirthDate:      "2010-05-01",
				FavoriteAnimal: "mèo",
				SelectedImage:  "image1",
				CreatedAt:      createdAt,
			},
			STT:  intPtr(1),
			Name: "Trần Văn An",
		},
	}

	doc := RenderCSV(rows)
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, UTF8BOM+"STT,Tên,Ngày sinh,Con vật yêu thích,Ảnh chọn,Ngày gửi", lines[0])
	assert.Equal(t, `1,"Trần Văn An",2010-05-01,"mèo",image1,2025-03-14T09:30:00Z`, lines[1])
}

func TestRenderCSV_FreeTextFieldsAreNotEscaped(t *testing.T) {
	// The historical export quotes the two free-text columns literally and
	// never escapes embedded commas or quotes. This locks that behavior in.
	rows := []models.SubmissionDetail{
		{
			Submission: models.Submission{
				ID:             1,
				BirthDate:      "2011-01-02",
				FavoriteAnimal: "chó, mèo",
				SelectedImage:  "image2",
			},
			STT:  intPtr(3),
			Name: "Lê Thị Huỳnh Anh",
		},
	}

	doc := RenderCSV(rows)

	assert.Contains(t, doc, `"chó, mèo"`)
	assert.NotContains(t, doc, `""chó`, "embedded text must not be doubled")
	assert.NotContains(t, doc, `\"`, "embedded text must not be backslash-escaped")
}

func TestRenderCSV_UnresolvableStudentFallsBackToID(t *testing.T) {
	rows := []models.SubmissionDetail{
		{
			Submission: models.Submission{
				ID:             42,
				BirthDate:      "2010-12-24",
				FavoriteAnimal: "cá",
				SelectedImage:  "image3",
			},
			STT:  nil,
			Name: "",
		},
	}

	doc := RenderCSV(rows)
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[1], `42,"",`), "STT column must fall back to the submission id")
}

func TestRenderCSV_ZeroTimestampRendersEmpty(t *testing.T) {
	rows := []models.SubmissionDetail{
		{
			Submission: models.Submission{ID: 1, SelectedImage: "image1"},
			STT:        intPtr(2),
			Name:       "Phạm Thế Anh",
		},
	}

	doc := RenderCSV(rows)

	assert.True(t, strings.HasSuffix(doc, "image1,\n"), "zero creation time must render as an empty column")
}
