package config

type Config struct {
	Server ServerConfig `yaml:"server"`
	Gate   GateConfig   `yaml:"gate"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	Environment string             `yaml:"environment"`
	StaticDir   string             `yaml:"static_dir"`
	Debug       *ServerDebugConfig `yaml:"debug"`

	// TrustProxyHeaders takes the client address from True-Client-IP,
	// X-Real-IP or X-Forwarded-For. Enable only behind a reverse proxy.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

var DefaultServerConfig = ServerConfig{
	Port:        8080,
	Environment: EnvironmentDevelopment,
	StaticDir:   "web/dist",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// GateConfig configures the shared-password gate in front of the site.
type GateConfig struct {
	// Password is the single shared secret. It has no default.
	Password string `yaml:"password"`

	// BypassPrefixes lists asset path prefixes served without the auth cookie.
	// The API prefix and the login page are always bypassed.
	BypassPrefixes []string `yaml:"bypass_prefixes"`
}

var DefaultGateConfig = GateConfig{
	BypassPrefixes: []string{"/assets"},
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:8080"},
	AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// IsProduction reports whether cookies should carry the Secure attribute.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvironmentProduction
}
