package config

// Gorm engines.
const (
	GormEngineSQLite   = "sqlite"
	GormEngineMySQL    = "mysql"
	GormEnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string // extra dsn parameters
	Host       string
	Port       int
	User       string
	Password   string
	Name       string // database name, or file path for sqlite
	GormEngine string // sqlite, mysql or postgres
}
