package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/silentraja/Medskls/pkg/db"
	httpclient "github.com/silentraja/Medskls/pkg/http-client"
	emailsending "github.com/silentraja/Medskls/pkg/messaging/email-sending"
	messagingTypes "github.com/silentraja/Medskls/pkg/messaging/types"
	smtpclient "github.com/silentraja/Medskls/pkg/smtp-client"
	"github.com/silentraja/Medskls/pkg/survey"
	"github.com/silentraja/Medskls/pkg/survey/wizardengine"
	"github.com/silentraja/Medskls/pkg/utils"

	intakeDB "github.com/silentraja/Medskls/pkg/db/intake"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_INTAKE_DB_USERNAME = "INTAKE_DB_USERNAME"
	ENV_INTAKE_DB_PASSWORD = "INTAKE_DB_PASSWORD"

	ENV_SMTP_BRIDGE_API_KEY = "SMTP_BRIDGE_API_KEY"
	ENV_SMTP_USERNAME       = "SMTP_USERNAME"
	ENV_SMTP_PASSWORD       = "SMTP_PASSWORD"

	ENV_PATIENT_USER_JWT_SIGN_KEY = "PATIENT_USER_JWT_SIGN_KEY"
)

type IntakeApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	PatientUserJWTConfig struct {
		SignKey   string        `json:"sign_key" yaml:"sign_key"`
		ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
	} `json:"patient_user_jwt_config" yaml:"patient_user_jwt_config"`

	// DB configs
	DBConfigs struct {
		IntakeDB db.DBConfigYaml `json:"intake_db" yaml:"intake_db"`
	} `json:"db_configs" yaml:"db_configs"`

	FilestorePath string `json:"filestore_path" yaml:"filestore_path"`

	MessagingConfigs messagingTypes.MessagingConfigs `json:"messaging_configs" yaml:"messaging_configs"`

	// Direct SMTP server list, optional. When empty only the bridge is used.
	SmtpServerConfigPath string `json:"smtp_server_config_path" yaml:"smtp_server_config_path"`
}

var (
	conf            IntakeApiConfig
	intakeDBService *intakeDB.IntakeDBService
)

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

	// Override secrets from environment variables
	secretsOverride()

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	checkIntakeFilestorePath()

	survey.Init(intakeDBService, conf.FilestorePath)

	// init message sending config
	initMessageSendingConfig()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_INTAKE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.IntakeDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_INTAKE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.IntakeDB.Password = dbPassword
	}

	if apiKey := os.Getenv(ENV_SMTP_BRIDGE_API_KEY); apiKey != "" {
		if conf.MessagingConfigs.SmtpBridgeConfig == nil {
			conf.MessagingConfigs.SmtpBridgeConfig = &messagingTypes.SmtpBridgeConfig{}
		}
		conf.MessagingConfigs.SmtpBridgeConfig.APIKey = apiKey
	}

	if jwtSignKey := os.Getenv(ENV_PATIENT_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.PatientUserJWTConfig.SignKey = jwtSignKey
	}

	// Override notification recipient lists per role
	for _, role := range wizardengine.NotificationRecipientRoles {
		envVarName := utils.GenerateNotificationRecipientsEnvVarName(role)
		if recipients := os.Getenv(envVarName); recipients != "" {
			if conf.MessagingConfigs.NotificationRecipients == nil {
				conf.MessagingConfigs.NotificationRecipients = map[string][]string{}
			}
			conf.MessagingConfigs.NotificationRecipients[role] = strings.Split(recipients, ",")
		}
	}
}

func checkIntakeFilestorePath() {
	// To store uploaded patient photos
	fsPath := conf.FilestorePath
	if fsPath == "" {
		slog.Error("Filestore path not set")
		panic("Filestore path not set")
	}

	if _, err := os.Stat(fsPath); os.IsNotExist(err) {
		slog.Error("Filestore path does not exist", slog.String("path", fsPath))
		panic("Filestore path does not exist")
	}
}

func initMessageSendingConfig() {
	var smtpClients *smtpclient.SmtpClients
	if conf.SmtpServerConfigPath != "" {
		var serverList smtpclient.SmtpServerList
		if err := serverList.ReadFromFile(conf.SmtpServerConfigPath); err != nil {
			panic(err)
		}

		username := os.Getenv(ENV_SMTP_USERNAME)
		password := os.Getenv(ENV_SMTP_PASSWORD)
		if username != "" || password != "" {
			for i := range serverList.Servers {
				serverList.Servers[i].SetCredentials(username, password)
			}
		}

		var err error
		smtpClients, err = smtpclient.NewSmtpClients(serverList)
		if err != nil {
			panic(err)
		}
	}

	emailsending.InitMessageSendingVariables(
		loadEmailClientHTTPConfig(),
		smtpClients,
		conf.MessagingConfigs.GlobalEmailTemplateConstants,
	)
}

func loadEmailClientHTTPConfig() *httpclient.ClientConfig {
	if conf.MessagingConfigs.SmtpBridgeConfig == nil {
		return &httpclient.ClientConfig{}
	}
	return &httpclient.ClientConfig{
		RootURL: conf.MessagingConfigs.SmtpBridgeConfig.URL,
		APIKey:  conf.MessagingConfigs.SmtpBridgeConfig.APIKey,
		Timeout: conf.MessagingConfigs.SmtpBridgeConfig.RequestTimeout,
	}
}

func initDBs() {
	var err error
	intakeDBService, err = intakeDB.NewIntakeDBService(db.DBConfigFromYaml(conf.DBConfigs.IntakeDB))
	if err != nil {
		slog.Error("Error connecting to Intake DB", slog.String("error", err.Error()))
		panic(err)
	}
}
