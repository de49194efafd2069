package entity

type Config struct {
	Server         ServerConfig   `yaml:"server"`
	PostgresConfig PostgresConfig `yaml:"database"`
	OpenAI         OpenAIConfig   `yaml:"openai"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

// OpenAIConfig configures the recipe generation collaborator. The API key
// is never stored in the YAML file, it comes from the environment.
type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}
