package configs

import "time"

// OpenAI holds configuration for the external completion service used to
// produce campaign suggestions. APIKey has no default: a missing credential
// fails at startup. Model and Timeout are fixed per process; they are not
// runtime parameters of the suggest endpoint.
type OpenAI struct {
	// APIKey is the completion-service credential.
	APIKey string `env:"API_KEY,notEmpty"`
	// Model is the completion model used for every suggestion call.
	Model string `env:"MODEL" envDefault:"gpt-4o-mini"`
	// BaseURL overrides the service endpoint. Empty means the public API.
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds a single completion call, including connection setup.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
