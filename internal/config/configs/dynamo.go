package configs

// Dynamo holds configuration for the DynamoDB-backed campaign store. Table
// names the campaigns table and has no default: a missing value is a
// startup-time failure rather than a per-request one.
type Dynamo struct {
	// Table is the name of the campaigns table.
	Table string `env:"TABLE,notEmpty"`
	// Region overrides the SDK's default region resolution when set.
	Region string `env:"REGION"`
	// Endpoint points the client at an alternative DynamoDB endpoint, e.g.
	// a local instance during development. Empty means the SDK default.
	Endpoint string `env:"ENDPOINT"`
}
