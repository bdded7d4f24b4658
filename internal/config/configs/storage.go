package configs

import "fmt"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Storage selects where console records live.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	// Seed writes the sample records on serve when the store is empty.
	Seed bool `env:"SEED" envDefault:"true"`
}

func (s Storage) Validate() error {
	switch s.Driver {
	case DriverMemory, DriverPostgres:
		return nil
	}
	return fmt.Errorf("storage: unknown driver %q", s.Driver)
}
