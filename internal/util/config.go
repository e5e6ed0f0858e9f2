package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText string
	Rules    string // classic|extended
	Theme    string // tui palette
	Mode     string // player|random|ordered|tui
	Rounds   int
}
