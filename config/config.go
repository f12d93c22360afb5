package config

// Backend selects the store implementation at configuration time.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Environment  string `envconfig:"ENV" default:"dev"`
	ServerPort   string `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURI  string `envconfig:"DATABASE_URI" required:"true"`
	StoreBackend string `envconfig:"STORE_BACKEND" default:"postgres"`
	SessionKey   string `envconfig:"SESSION_KEY" required:"true"`
	WebAppURL    string `envconfig:"WEB_APP_URL" default:"http://localhost:8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"25"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM" default:"noreply@nutrimate.com"`
}
