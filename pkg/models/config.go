package models

// DefaultHost is offered when `config add` is answered with a blank host.
const DefaultHost = "http://localhost:8000/api/v1"

// DefaultAuthScheme is the Authorization header scheme the service expects.
const DefaultAuthScheme = "Token"

// Config holds the connection settings persisted by `config add`.
type Config struct {
	Host        string `toml:"host" mapstructure:"host"`
	Credentials string `toml:"credentials" mapstructure:"credentials"`
	AuthScheme  string `toml:"auth_scheme,omitempty" mapstructure:"auth_scheme"`
}
