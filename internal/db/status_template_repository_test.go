package db_test

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/statusfx/internal/data"
	"github.com/udisondev/statusfx/internal/db"
	"github.com/udisondev/statusfx/internal/db/migrations"
	"github.com/udisondev/statusfx/internal/testutil"
)

func TestStatusTemplateRepository_UpsertLoad(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewStatusTemplateRepository(pool)
	ctx := context.Background()

	empty, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Upsert(ctx, data.DefaultStatusTemplates()))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(data.DefaultStatusTemplates()))
	for i := 1; i < len(loaded); i++ {
		assert.Less(t, loaded[i-1].Name, loaded[i].Name, "ordered by name")
	}

	byName := make(map[string]data.StatusTemplate, len(loaded))
	for _, tmpl := range loaded {
		byName[tmpl.Name] = tmpl
	}
	for _, want := range data.DefaultStatusTemplates() {
		got, ok := byName[want.Name]
		require.True(t, ok, want.Name)
		assert.Equal(t, want.Effect, got.Effect)
		assert.Equal(t, want.Duration, got.Duration)
		if len(want.Params) > 0 {
			assert.Equal(t, want.Params, got.Params)
		}
	}
}

func TestStatusTemplateRepository_UpsertReplaces(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewStatusTemplateRepository(pool)
	ctx := context.Background()

	tmpl := data.StatusTemplate{
		Name:     "Haste",
		Effect:   "SpeedChange",
		Duration: 10 * time.Second,
		Params:   map[string]string{"value": "20"},
	}
	require.NoError(t, repo.Upsert(ctx, []data.StatusTemplate{tmpl}))

	tmpl.Duration = 30 * time.Second
	tmpl.Params = map[string]string{"value": "40"}
	require.NoError(t, repo.Upsert(ctx, []data.StatusTemplate{tmpl}))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 30*time.Second, loaded[0].Duration)
	assert.Equal(t, "40", loaded[0].Params["value"])

	deleted, err := repo.Delete(ctx, "Haste")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, "Haste")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStatusTemplateRepository_UpsertRejectsInvalid(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewStatusTemplateRepository(pool)

	err := repo.Upsert(context.Background(), []data.StatusTemplate{{Name: "Broken", Effect: "StatUp"}})
	assert.Error(t, err)
}

func TestRunMigrations_Versions(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	dsn := pool.Config().ConnString()

	version, err := db.RunMigrations(ctx, dsn, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version, "already applied, nothing pending")

	initial, err := fs.ReadFile(migrations.FS, "00001_status_templates.sql")
	require.NoError(t, err)
	tags := []byte(`-- +goose Up
ALTER TABLE status_templates ADD COLUMN tags TEXT[] NOT NULL DEFAULT '{}';

-- +goose Down
ALTER TABLE status_templates DROP COLUMN tags;
`)
	extended := fstest.MapFS{
		"00001_status_templates.sql": {Data: initial},
		"00002_template_tags.sql":    {Data: tags},
	}

	version, err = db.RunMigrations(ctx, dsn, extended)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	repo := db.NewStatusTemplateRepository(pool)
	require.NoError(t, repo.Upsert(ctx, data.DefaultStatusTemplates()[:1]))
	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
