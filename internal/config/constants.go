package config

const (
	// Configuration file paths
	DefaultDataFile = "data/drops.json"

	// Service identity
	ServiceName = "ragdropsim"
	Version     = "1.0.0"
)
