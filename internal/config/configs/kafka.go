package configs

// Kafka configures the status event producer. No brokers disables it.
type Kafka struct {
	Brokers  []string `env:"BROKERS" envSeparator:","`
	Topic    string   `env:"TOPIC" envDefault:"backoffice.events"`
	ClientID string   `env:"CLIENT_ID" envDefault:"backoffice"`
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }
