package models

// MConfig Structure
type MConfig struct {
	Name                  string            `yaml:"name"`
	Host                  string            `yaml:"host"`
	Port                  int               `yaml:"port"`
	LogLevel              string            `yaml:"log_level"`
	ServeStats            bool              `yaml:"serve_stats"`
	RescanIntervalSeconds int               `yaml:"rescan_interval_seconds"`
	DataSource            MDataSourceConfig `yaml:"data_source"`
	Network               MNetworkConfig    `yaml:"network"`
	Download              MDownloadConfig   `yaml:"download"`
}

type MDataSourceConfig struct {
	DataDirectory    string `yaml:"data_directory"`
	IgnoreStatedYear bool   `yaml:"ignore_stated_year"`
	ExtractArchives  bool   `yaml:"extract_archives"`
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	MaxRetries     int    `yaml:"retries"`
	UserAgent      string `yaml:"user_agent"`
}

type MDownloadConfig struct {
	Enabled   bool    `yaml:"enabled"`
	APIKey    string  `yaml:"api_key"` // NREL developer key
	Email     string  `yaml:"email"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Years     []int   `yaml:"years"`
}
