package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	smtpclient "github.com/silentraja/Medskls/pkg/smtp-client"
	"github.com/silentraja/Medskls/pkg/utils"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_API_KEYS      = "SMTP_BRIDGE_API_KEYS"
	ENV_SMTP_USERNAME = "SMTP_USERNAME"
	ENV_SMTP_PASSWORD = "SMTP_PASSWORD"
)

type SmtpBridgeConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	ApiKeys []string `json:"api_keys" yaml:"api_keys"`

	SMTPServerConfigs struct {
		HighPrio smtpclient.SmtpServerList `json:"high_prio" yaml:"high_prio"`
		LowPrio  smtpclient.SmtpServerList `json:"low_prio" yaml:"low_prio"`
	} `json:"smtp_server_configs" yaml:"smtp_server_configs"`
}

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	secretsOverride()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	if apiKeys := os.Getenv(ENV_API_KEYS); apiKeys != "" {
		conf.ApiKeys = strings.Split(apiKeys, ",")
	}

	username := os.Getenv(ENV_SMTP_USERNAME)
	password := os.Getenv(ENV_SMTP_PASSWORD)
	if username == "" && password == "" {
		return
	}
	for i := range conf.SMTPServerConfigs.HighPrio.Servers {
		conf.SMTPServerConfigs.HighPrio.Servers[i].SetCredentials(username, password)
	}
	for i := range conf.SMTPServerConfigs.LowPrio.Servers {
		conf.SMTPServerConfigs.LowPrio.Servers[i].SetCredentials(username, password)
	}
}
