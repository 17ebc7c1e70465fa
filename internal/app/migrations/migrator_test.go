package migrations

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	sql  string
	args []any
}

func (r *recordingExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	r.sql = sql
	r.args = arguments
	return pgconn.CommandTag{}, nil
}

func TestRecordMigration_WritesThroughGivenExecutor(t *testing.T) {
	tx := &recordingExecer{}
	m := NewMigrator(nil)

	err := m.recordMigration(context.Background(), tx, "001")

	require.NoError(t, err)
	assert.Contains(t, tx.sql, "INSERT INTO schema_migrations")
	require.Len(t, tx.args, 2)
	assert.Equal(t, "001", tx.args[0])
}
