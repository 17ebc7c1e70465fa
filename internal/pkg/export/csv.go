package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/ngvthanh/classform/internal/app/models"
)

// UTF8BOM is prepended so spreadsheet tools detect the encoding of the
// Vietnamese column headers.
const UTF8BOM = "\uFEFF"

// Header is the fixed export header row.
const Header = "STT,Tên,Ngày sinh,Con vật yêu thích,Ảnh chọn,Ngày gửi"

// CreatedAtFormat is the timestamp layout of the last column.
const CreatedAtFormat = time.RFC3339

// RenderCSV renders submissions as the downloadable report document.
//
// The format is fixed by the consumers of the historical export: a BOM,
// the header, then one row per submission where only the two free-text
// columns (name, favorite animal) are double-quoted. Embedded quotes and
// commas inside those fields are intentionally NOT escaped; downstream
// sheets rely on the literal layout. Rows whose student reference did not
// resolve fall back to the raw submission id in the STT column.
func RenderCSV(rows []models.SubmissionDetail) string {
	var b strings.Builder
	b.WriteString(UTF8BOM)
	b.WriteString(Header)
	b.WriteByte('\n')

	for _, row := range rows {
		b.WriteString(ordinalColumn(row))
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(row.Name)
		b.WriteByte('"')
		b.WriteByte(',')
		b.WriteString(row.BirthDate)
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(row.FavoriteAnimal)
		b.WriteByte('"')
		b.WriteByte(',')
		b.WriteString(row.SelectedImage)
		b.WriteByte(',')
		if !row.CreatedAt.IsZero() {
			b.WriteString(row.CreatedAt.Format(CreatedAtFormat))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func ordinalColumn(row models.SubmissionDetail) string {
	if row.STT != nil {
		return strconv.Itoa(*row.STT)
	}
	return strconv.FormatInt(row.ID, 10)
}
