package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ngvthanh/classform/internal/app/repositories"
)

// roster is the class list, in roll-call order. Ordinals are assigned by
// position (1-based); they never change once handed out.
var roster = []string{
	"Trần Văn An",
	"Lê Thị Huỳnh Anh",
	"Nguyễn Ngọc Duyên Anh",
	"Phạm Thế Anh",
	"Phan Thị Khánh Băng",
	"Trần Ngọc Diệu",
	"Nguyễn Khánh Duy",
	"Trần Thị Nhã Đan",
	"Nguyễn Ngọc Huỳnh Giao",
	"Đinh Nguyễn Anh Hào",
	"Võ Đặng Gia Hân",
	"Bùi Minh Hiếu",
	"Phạm Văn Hiếu",
	"Danh Minh Huy",
	"Phan Vũ Huy",
	"Trần Duy Khang",
	"Trần Nguyễn Mỹ Kim",
	"Nguyễn Thị Thùy Linh",
	"Hồ Văn Thanh Lĩnh",
	"Đỗ Tấn Lộc",
	"Tiết Thị Cẩm Ly",
	"Lê Ngọc Ngân",
	"Nguyễn Tỉnh Ngọc",
	"Trần Thị Cẩm Nhung",
	"Trần Nguyên Phú",
	"Phạm Võ Thanh Quỳnh",
	"Vũ Thị Ngọc Thắm",
	"Dương Đức Thiện",
	"Lâm Trường Thịnh",
	"Lê Trường Thịnh",
	"Bùi Minh Thuận",
	"Hồ Thủy Tiên",
	"Trần Thị Nhựt Trang",
	"Hồ Ngọc Trâm",
	"Danh Trình",
	"Trần Thị Ngọc Tuyền",
	"Thân Thái Tường",
	"Lại Cao Trường Vi",
	"Nguyễn Tường Vi",
	"Danh Thị Hồng Vinh",
	"Trần Trúc Vy",
}

// CreateDefaultData seeds the student roster if it isn't present yet.
// Seeding is idempotent: existing ordinals are left untouched, so the
// roster is effectively immutable after the first run.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := repositories.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (student roster)...")
	var finalErr error

	for i, name := range roster {
		stt := i + 1
		if err := studentRepo.Upsert(ctx, stt, name); err != nil {
			lgr.Error().Err(err).Int("stt", stt).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	count, err := studentRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting students after seed")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int("students", count).Msg("Student roster ready")
	return finalErr
}
