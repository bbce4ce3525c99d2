package config

// Application constants
const (
	// EmailDomain is the mail domain used when deriving customer email
	// addresses from registration input.
	EmailDomain = "example.com"
)
