package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"` // uploads root on disk
		BaseURL  string `yaml:"base_url"`  // public mount, e.g. /uploads
	} `yaml:"storage"`

	Upload struct {
		ImageTypes    []string `yaml:"image_types"`     // accepted image MIME types
		VideoTypes    []string `yaml:"video_types"`     // accepted video MIME types
		MaxImageFiles int      `yaml:"max_image_files"` // per request
		MaxVideoSize  int64    `yaml:"max_video_size"`  // bytes, single file
	} `yaml:"upload"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`

	Bootstrap struct {
		SuperAdminEmail    string `yaml:"superadmin_email"`
		SuperAdminPassword string `yaml:"superadmin_password"`
		SuperAdminName     string `yaml:"superadmin_name"`
	} `yaml:"bootstrap"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, unless DATABASE_URL is set, in which
// case everything comes from environment variables (test mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment (test mode)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLHours = 24

	cfg.Storage.BasePath = os.Getenv("UPLOADS_DIR")
	cfg.Storage.BaseURL = "/uploads"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults fills the upload contract values that must not drift:
// the MIME allow-lists, the 5-image cap and the 100 MiB video cap are
// part of the API contract with stored data and existing clients.
func applyDefaults(cfg *Config) {
	if len(cfg.Upload.ImageTypes) == 0 {
		cfg.Upload.ImageTypes = []string{"image/jpeg", "image/png", "image/jpg"}
	}
	if len(cfg.Upload.VideoTypes) == 0 {
		cfg.Upload.VideoTypes = []string{"video/mp4", "video/webm", "video/ogg"}
	}
	if cfg.Upload.MaxImageFiles == 0 {
		cfg.Upload.MaxImageFiles = 5
	}
	if cfg.Upload.MaxVideoSize == 0 {
		cfg.Upload.MaxVideoSize = 100 * 1024 * 1024
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
