package mongo

import (
	"net/url"
	"time"
)

// Config represents the configuration for the database.
//
// ConnectionURL wins when set. Otherwise the URL is assembled from Scheme,
// Host and the optional credentials, the way hosted clusters hand them out.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL"`                                  // Full connection string.
	Scheme          string        `env:"MONGODB_SCHEME" envDefault:"mongodb"`          // mongodb or mongodb+srv.
	Host            string        `env:"MONGODB_HOST" envDefault:"localhost:27017"`    // host[:port] or SRV record name.
	User            string        `env:"MONGODB_USER"`                                 // Optional user name.
	Password        string        `env:"MONGODB_PASSWORD"`                             // Optional password.
	Database        string        `env:"MONGODB_DATABASE" envDefault:"newsletter"`     // Database holding the subscriptions collection.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // Timeout for establishing a connection.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // Maximum connections in the pool.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // Minimum connections in the pool.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // Idle time before a pooled connection is closed.
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`  // Connection attempts before giving up.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"` // Pause between connection attempts.
}

// URL returns the connection string to dial.
func (c Config) URL() string {
	if c.ConnectionURL != "" {
		return c.ConnectionURL
	}
	u := url.URL{Scheme: c.Scheme, Host: c.Host, Path: "/"}
	if u.Scheme == "" {
		u.Scheme = "mongodb"
	}
	switch {
	case c.User != "" && c.Password != "":
		u.User = url.UserPassword(c.User, c.Password)
	case c.User != "":
		u.User = url.User(c.User)
	}
	return u.String()
}
