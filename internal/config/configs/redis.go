package configs

// Redis configures the pub/sub campaign event relay. When neither Redis nor
// AMQP is enabled events are written to the log instead.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Addr    string `env:"ADDRESS" envDefault:"localhost:6379"`
	Channel string `env:"CHANNEL" envDefault:"groupbuy:events"`
}
