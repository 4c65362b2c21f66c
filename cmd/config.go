package cmd

// Config carries every knob the service reads from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers []string

	StripeAPIKey string

	GeoServiceURL string

	MoverShareRate float64
	PerDiemRate    float64
}
