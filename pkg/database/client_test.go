package database

import (
	"context"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/test/util"
)

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "secret"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "civicquant", cfg.User)
				assert.Equal(t, "civicquant", cfg.Database)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":     "db.example.com",
				"DB_PORT":     "5433",
				"DB_USER":     "svc",
				"DB_PASSWORD": "secret",
				"DB_NAME":     "production",
				"DB_SSLMODE":  "require",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
			},
		},
		{
			name:    "invalid port",
			envVars: map[string]string{"DB_PORT": "nope", "DB_PASSWORD": "secret"},
			wantErr: "invalid DB_PORT",
		},
		{
			name:    "invalid lifetime",
			envVars: map[string]string{"DB_CONN_MAX_LIFETIME": "forever", "DB_PASSWORD": "secret"},
			wantErr: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:    "missing password",
			envVars: map[string]string{},
			wantErr: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "t", Password: "t", Database: "t",
		MaxOpenConns: 10, MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())

	idleExceedsOpen := valid
	idleExceedsOpen.MaxIdleConns = 20
	assert.Error(t, idleExceedsOpen.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host: "h", Port: 5432, User: "u", Password: "p", Database: "d", SSLMode: "disable",
	}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", cfg.DSN())
}

func TestHealthAndFullTextSearch(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)

	now := time.Now().UTC()
	msg1, err := client.RawMessage.Create().
		SetSourceChannelID("chan-1").
		SetUpstreamMessageID("m-1").
		SetMessageTimestampUtc(now).
		SetRawText("BREAKING: refinery outage halts production").
		SetNormalizedText("refinery outage halts production").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.RawMessage.Create().
		SetSourceChannelID("chan-1").
		SetUpstreamMessageID("m-2").
		SetMessageTimestampUtc(now).
		SetRawText("CPI prints 3.1 percent").
		SetNormalizedText("CPI prints 3.1 percent").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT id FROM raw_messages
		WHERE to_tsvector('english', normalized_text) @@ to_tsquery('english', $1)`,
		"refinery & outage",
	)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.Len(t, ids, 1)
	assert.Equal(t, msg1.ID, ids[0])
}
