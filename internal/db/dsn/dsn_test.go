package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/config"
)

func TestMySQL(t *testing.T) {
	db := config.DB{User: "teca", Password: "secret", Host: "db", Port: 3306, Name: "teca"}
	assert.Equal(t, "teca:secret@tcp(db:3306)/teca", MySQL(db))

	db.Extras = "parseTime=true"
	assert.Equal(t, "teca:secret@tcp(db:3306)/teca?parseTime=true", MySQL(db))
}

func TestPostgres(t *testing.T) {
	db := config.DB{User: "teca", Password: "p@ss", Host: "db", Port: 5432, Name: "teca", Extras: "sslmode=disable"}
	assert.Equal(t, "postgres://teca:p%40ss@db:5432/teca?sslmode=disable", Postgres(db))
}

func TestSQLite(t *testing.T) {
	assert.Equal(t, "file::memory:?cache=shared", SQLite(config.DB{}))
	assert.Equal(t, "teca.db", SQLite(config.DB{Name: "teca.db"}))
	assert.Equal(t, "teca.db?_pragma=foreign_keys(1)", SQLite(config.DB{Name: "teca.db", Extras: "_pragma=foreign_keys(1)"}))
}

func TestDialector(t *testing.T) {
	tests := []struct {
		engine string
		name   string
	}{
		{config.GormEngineSQLite, "sqlite"},
		{"", "sqlite"},
		{config.GormEngineMySQL, "mysql"},
		{config.GormEnginePostgres, "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			d, err := Dialector(config.DB{GormEngine: tt.engine, Name: "teca"})
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	_, err := Dialector(config.DB{GormEngine: "oracle"})
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}
