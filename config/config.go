package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL         string
	RedisAddress  string
	Port          string
	AdminPassword string
	Mail          MailConfig
}

// MailConfig holds SMTP settings for outbound notifications. A local
// debug SMTP server is the development default.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// GetPort returns the listen port from the config
func (c *AppConfig) GetPort() string {
	return c.Port
}
