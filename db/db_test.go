package db

import (
	"context"
	"os"
	"testing"

	"campus-nav/data"
	"campus-nav/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "localhost", Port: "5432", User: "nav", Password: "secret", Name: "campus"}
	assert.Equal(t, "host=localhost user=nav password=secret dbname=campus port=5432 sslmode=disable", cfg.DSN())
}

func TestRecordsRoundTrip(t *testing.T) {
	d, err := registry.Decode(data.CampusJSON, registry.FormatJSON)
	require.NoError(t, err)

	locations, media := ToRecords(d)
	require.Len(t, locations, 7)
	assert.Equal(t, 3, locations[3].Position)
	assert.Equal(t, "Cricket Ground", locations[3].Name)

	back := FromRecords(locations, media)
	assert.Equal(t, d.Locations, back.Locations)
	assert.Equal(t, d.Media, back.Media)
	assert.Equal(t, "postgres", back.Meta["source"])

	_, err = registry.FromMapData(back)
	assert.NoError(t, err)

	l, m := ToRecords(nil)
	assert.Nil(t, l)
	assert.Nil(t, m)
}

// TestStore_Integration 需要真实的 PostgreSQL，未设置 DB_HOST 时跳过
func TestStore_Integration(t *testing.T) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("DB_HOST 未设置，跳过数据库集成测试")
	}

	store, err := Open(Config{
		Host:       host,
		Port:       getenv("DB_PORT", "5432"),
		User:       getenv("DB_USER", "navuser"),
		Password:   getenv("DB_PASSWORD", "navpassword"),
		Name:       getenv("DB_NAME", "campusnav"),
		MaxRetries: 1,
	})
	require.NoError(t, err)
	defer store.Close()

	d, err := registry.Decode(data.CampusJSON, registry.FormatJSON)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, d))

	seeded, err := store.SeedIfEmpty(ctx, d)
	require.NoError(t, err)
	assert.False(t, seeded)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.Locations, loaded.Locations)
	assert.Equal(t, d.Media, loaded.Media)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
