package desktop

type Config struct {
	SaveResults bool
	ResultsPath string
}

func NewDefaultConfig() *Config {
	return &Config{
		SaveResults: true,
		ResultsPath: "./results",
	}
}
