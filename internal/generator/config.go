package generator

// Config controls synthetic family generation.
type Config struct {
	Generations     int
	FounderCouples  int
	MaxChildren     int
	MarriageChance  float64
	NonbinaryChance float64
	Seed            int64
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		Generations:     3,
		FounderCouples:  4,
		MaxChildren:     3,
		MarriageChance:  0.6,
		NonbinaryChance: 0.05,
		Seed:            42,
	}
}
