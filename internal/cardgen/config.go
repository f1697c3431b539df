package cardgen

// Config holds generation settings per operation.
type Config struct {
	ProcessMaxTokens  int
	QuestionMaxTokens int
	QueryMaxTokens    int
	Temperature       float64

	// MaxContentChars truncates very long source notes before prompting.
	MaxContentChars int
	// MaxHistory bounds how many past reviews are sent for question generation.
	MaxHistory int
}

// DefaultConfig returns the defaults used by the CLI and API.
func DefaultConfig() Config {
	return Config{
		ProcessMaxTokens:  1500,
		QuestionMaxTokens: 1000,
		QueryMaxTokens:    800,
		Temperature:       0.3,
		MaxContentChars:   20000,
		MaxHistory:        50,
	}
}
