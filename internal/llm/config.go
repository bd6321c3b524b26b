package llm

// Config holds generation settings shared by all features.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the production defaults: the fast model tier at low
// temperature for consistent output.
func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.5-flash",
		Temperature: 0.2,
	}
}
