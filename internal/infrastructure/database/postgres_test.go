package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource_Embedded(t *testing.T) {
	migrations, err := MigrationSource().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, "0001_init.sql", first.Id)
	assert.NotEmpty(t, first.Up)
	assert.NotEmpty(t, first.Down)

	joined := ""
	for _, stmt := range first.Up {
		joined += stmt
	}
	assert.Contains(t, joined, "idx_meeting_flows_one_active")
	assert.Contains(t, joined, "WHERE state <> 'completed'")
}
