package configs

import "strings"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Engine tunes the group-buy engine.
type Engine struct {
	// Storage selects the campaign store and ledger backend: "memory" or
	// "postgres". Unknown values fall back to "memory".
	Storage string `env:"STORAGE" envDefault:"memory"`
	// JoinRetries is the optimistic-concurrency attempt budget per call.
	JoinRetries int `env:"JOIN_RETRIES" envDefault:"3"`
	// SweepSchedule is a cron spec for the expiry sweeper. Empty disables it.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@every 1m"`
	// SweepBatch caps campaigns settled per sweep.
	SweepBatch int `env:"SWEEP_BATCH" envDefault:"500"`
	// Seed inserts demo campaigns on startup.
	Seed bool `env:"SEED" envDefault:"false"`
}

// StorageBackend normalises Storage.
func (c Engine) StorageBackend() string {
	if strings.EqualFold(strings.TrimSpace(c.Storage), StoragePostgres) {
		return StoragePostgres
	}
	return StorageMemory
}
