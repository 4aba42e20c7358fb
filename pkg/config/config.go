package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the playrunner daemon and client configuration.
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Server   ServerConfig   `yaml:"server" json:"server"`
	GRPC     GRPCConfig     `yaml:"grpc" json:"grpc"`
	HTTP     HTTPConfig     `yaml:"http" json:"http"`
	Runner   RunnerConfig   `yaml:"runner" json:"runner"`
	Dispatch DispatchConfig `yaml:"dispatch" json:"dispatch"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
	Archive  ArchiveConfig  `yaml:"archive" json:"archive"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	Client   ClientConfig   `yaml:"client" json:"client"`
}

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Address string        `yaml:"address" json:"address"`
	Port    int           `yaml:"port" json:"port"`
	NodeID  string        `yaml:"nodeId" json:"nodeId"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
	TLS     TLSConfig     `yaml:"tls" json:"tls"`
}

// TLSConfig points at PEM files; TLS is off when CertFile is empty.
// Setting ClientCAFile additionally requires clients to present a
// certificate signed by that CA.
type TLSConfig struct {
	CertFile     string `yaml:"certFile" json:"certFile"`
	KeyFile      string `yaml:"keyFile" json:"keyFile"`
	ClientCAFile string `yaml:"clientCaFile" json:"clientCaFile"`
}

// GRPCConfig holds gRPC-specific configuration
type GRPCConfig struct {
	MaxRecvMsgSize       int32         `yaml:"maxRecvMsgSize" json:"maxRecvMsgSize"`
	MaxSendMsgSize       int32         `yaml:"maxSendMsgSize" json:"maxSendMsgSize"`
	KeepAliveTime        time.Duration `yaml:"keepAliveTime" json:"keepAliveTime"`
	KeepAliveTimeout     time.Duration `yaml:"keepAliveTimeout" json:"keepAliveTimeout"`
	MaxConcurrentStreams uint32        `yaml:"maxConcurrentStreams" json:"maxConcurrentStreams"`
	MaxConnectionIdle    time.Duration `yaml:"maxConnectionIdle" json:"maxConnectionIdle"`
}

// HTTPConfig is the operational listener serving metrics and health.
type HTTPConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Address string `yaml:"address" json:"address"`
}

// RunnerConfig controls how a playbook run is assembled and watched.
type RunnerConfig struct {
	Program             string        `yaml:"program" json:"program"`
	InventoryScript     string        `yaml:"inventoryScript" json:"inventoryScript"`
	CallbackPluginDir   string        `yaml:"callbackPluginDir" json:"callbackPluginDir"`
	CallbackEventScript string        `yaml:"callbackEventScript" json:"callbackEventScript"`
	Transport           string        `yaml:"transport" json:"transport"`
	AgentProgram        string        `yaml:"agentProgram" json:"agentProgram"`
	AddKeyProgram       string        `yaml:"addKeyProgram" json:"addKeyProgram"`
	Shell               string        `yaml:"shell" json:"shell"`
	KeyDir              string        `yaml:"keyDir" json:"keyDir"`
	PromptTimeout       time.Duration `yaml:"promptTimeout" json:"promptTimeout"`
	KillGrace           time.Duration `yaml:"killGrace" json:"killGrace"`
	Prompts             PromptConfig  `yaml:"prompts" json:"prompts"`
}

// PromptConfig holds the regular expressions recognized in tool output.
type PromptConfig struct {
	KeyPassphrase string `yaml:"keyPassphrase" json:"keyPassphrase"`
	BadPassphrase string `yaml:"badPassphrase" json:"badPassphrase"`
	SudoPassword  string `yaml:"sudoPassword" json:"sudoPassword"`
	SSHPassword   string `yaml:"sshPassword" json:"sshPassword"`
}

// DispatchConfig sizes the worker pool that executes started jobs.
type DispatchConfig struct {
	Workers   int `yaml:"workers" json:"workers"`
	QueueSize int `yaml:"queueSize" json:"queueSize"`
}

// StorageConfig selects and configures the job record store.
type StorageConfig struct {
	Backend  string         `yaml:"backend" json:"backend"` // "memory", "dynamodb" or "redis"
	DynamoDB DynamoDBConfig `yaml:"dynamodb" json:"dynamodb"`
	Redis    RedisConfig    `yaml:"redis" json:"redis"`
}

type DynamoDBConfig struct {
	Region      string        `yaml:"region" json:"region"`
	TableName   string        `yaml:"tableName" json:"tableName"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint"`
	TTLEnabled  bool          `yaml:"ttlEnabled" json:"ttlEnabled"`
	TTLDuration time.Duration `yaml:"ttlDuration" json:"ttlDuration"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr" json:"addr"`
	Password  string `yaml:"password" json:"password"`
	DB        int    `yaml:"db" json:"db"`
	KeyPrefix string `yaml:"keyPrefix" json:"keyPrefix"`
}

// ArchiveConfig configures the optional transcript archive.
type ArchiveConfig struct {
	Enabled    bool             `yaml:"enabled" json:"enabled"`
	CloudWatch CloudWatchConfig `yaml:"cloudwatch" json:"cloudwatch"`
}

type CloudWatchConfig struct {
	Region         string `yaml:"region" json:"region"`
	LogGroupPrefix string `yaml:"logGroupPrefix" json:"logGroupPrefix"`
	RetentionDays  int32  `yaml:"retentionDays" json:"retentionDays"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// ClientConfig is what prctl uses to reach a daemon.
type ClientConfig struct {
	ServerAddress string        `yaml:"serverAddress" json:"serverAddress"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout"`
	CAFile        string        `yaml:"caFile" json:"caFile"` // plaintext when empty
	CertFile      string        `yaml:"certFile" json:"certFile"`
	KeyFile       string        `yaml:"keyFile" json:"keyFile"`
}

var DefaultConfig = Config{
	Version: "1.0",
	Server: ServerConfig{
		Address: "0.0.0.0",
		Port:    50061,
		Timeout: 30 * time.Second,
	},
	GRPC: GRPCConfig{
		MaxRecvMsgSize:       8 * 1024 * 1024,
		MaxSendMsgSize:       32 * 1024 * 1024,
		KeepAliveTime:        30 * time.Second,
		KeepAliveTimeout:     5 * time.Second,
		MaxConcurrentStreams: 500,
		MaxConnectionIdle:    15 * time.Minute,
	},
	HTTP: HTTPConfig{
		Enabled: true,
		Address: "127.0.0.1:9461",
	},
	Runner: RunnerConfig{
		Program:             "ansible-playbook",
		InventoryScript:     "/opt/playrunner/plugins/inventory/playrunner.py",
		CallbackPluginDir:   "/opt/playrunner/plugins/callback",
		CallbackEventScript: "/opt/playrunner/bin/playrunner-callback-event",
		AgentProgram:        "ssh-agent",
		AddKeyProgram:       "ssh-add",
		Shell:               "sh",
		PromptTimeout:       2 * time.Second,
		KillGrace:           5 * time.Second,
		Prompts: PromptConfig{
			KeyPassphrase: `Enter passphrase for .*:`,
			BadPassphrase: `Bad passphrase, try again for .*:`,
			SudoPassword:  `sudo password.*:`,
			SSHPassword:   `SSH password:`,
		},
	},
	Dispatch: DispatchConfig{
		Workers:   4,
		QueueSize: 64,
	},
	Storage: StorageConfig{
		Backend: "memory",
		DynamoDB: DynamoDBConfig{
			TableName:   "playrunner-jobs",
			TTLEnabled:  true,
			TTLDuration: 30 * 24 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:      "127.0.0.1:6379",
			KeyPrefix: "playrunner",
		},
	},
	Archive: ArchiveConfig{
		CloudWatch: CloudWatchConfig{
			LogGroupPrefix: "/playrunner",
			RetentionDays:  30,
		},
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
		Output: "stdout",
	},
	Client: ClientConfig{
		ServerAddress: "127.0.0.1:50061",
		Timeout:       30 * time.Second,
	},
}

// GetServerAddress returns the host:port the gRPC server listens on.
func (c *Config) GetServerAddress() string {
	return net.JoinHostPort(c.Server.Address, strconv.Itoa(c.Server.Port))
}

// LoadConfig loads the configuration from the first config file found, applies
// PLAYRUNNER_* environment overrides and validates the result. The returned
// string describes where the configuration came from.
func LoadConfig() (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config, searchPaths())
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	applyEnv(&config, os.Getenv)

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

// LoadConfigFrom reads one specific file, without the search path.
func LoadConfigFrom(path string) (*Config, error) {
	config := DefaultConfig
	if _, err := loadFromFile(&config, []string{path}); err != nil {
		return nil, err
	}
	applyEnv(&config, os.Getenv)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

func searchPaths() []string {
	paths := []string{
		os.Getenv("PLAYRUNNER_CONFIG_PATH"),
		"./config/playrunner.yml",
		"./playrunner.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".playrunner", "playrunner.yml"))
	}
	return append(paths, "/etc/playrunner/playrunner.yml")
}

func loadFromFile(config *Config, paths []string) (string, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

func applyEnv(config *Config, getenv func(string) string) {
	if val := getenv("PLAYRUNNER_SERVER_ADDRESS"); val != "" {
		config.Server.Address = val
	}
	if val := getenv("PLAYRUNNER_SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			config.Server.Port = port
		}
	}
	if val := getenv("PLAYRUNNER_NODE_ID"); val != "" {
		config.Server.NodeID = val
	}
	if val := getenv("PLAYRUNNER_TRANSPORT"); val != "" {
		config.Runner.Transport = val
	}
	if val := getenv("PLAYRUNNER_STORAGE_BACKEND"); val != "" {
		config.Storage.Backend = val
	}
	if val := getenv("PLAYRUNNER_REDIS_ADDR"); val != "" {
		config.Storage.Redis.Addr = val
	}
	if val := getenv("PLAYRUNNER_DYNAMODB_TABLE"); val != "" {
		config.Storage.DynamoDB.TableName = val
	}
	if val := getenv("PLAYRUNNER_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := getenv("PLAYRUNNER_LOG_FORMAT"); val != "" {
		config.Logging.Format = val
	}
	if val := getenv("PLAYRUNNER_CLIENT_ADDRESS"); val != "" {
		config.Client.ServerAddress = val
	}
	if val := getenv("PLAYRUNNER_CLIENT_CA_FILE"); val != "" {
		config.Client.CAFile = val
	}
	if val := getenv("PLAYRUNNER_CLIENT_CERT_FILE"); val != "" {
		config.Client.CertFile = val
	}
	if val := getenv("PLAYRUNNER_CLIENT_KEY_FILE"); val != "" {
		config.Client.KeyFile = val
	}
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if (c.Server.TLS.CertFile == "") != (c.Server.TLS.KeyFile == "") {
		return fmt.Errorf("tls requires both certFile and keyFile")
	}

	if c.Server.TLS.ClientCAFile != "" && c.Server.TLS.CertFile == "" {
		return fmt.Errorf("tls clientCaFile requires certFile and keyFile")
	}

	if strings.TrimSpace(c.Runner.Program) == "" {
		return fmt.Errorf("runner program must not be empty")
	}

	if c.Runner.PromptTimeout <= 0 {
		return fmt.Errorf("invalid prompt timeout: %v", c.Runner.PromptTimeout)
	}

	if c.Runner.KeyDir != "" && !filepath.IsAbs(c.Runner.KeyDir) {
		return fmt.Errorf("key directory must be absolute path: %s", c.Runner.KeyDir)
	}

	if c.Dispatch.Workers < 1 {
		return fmt.Errorf("invalid dispatch workers: %d", c.Dispatch.Workers)
	}

	if c.Dispatch.QueueSize < 0 {
		return fmt.Errorf("invalid dispatch queue size: %d", c.Dispatch.QueueSize)
	}

	switch c.Storage.Backend {
	case "memory":
	case "dynamodb":
		if c.Storage.DynamoDB.TableName == "" {
			return fmt.Errorf("dynamodb backend requires tableName")
		}
	case "redis":
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("redis backend requires addr")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s", c.Storage.Backend)
	}

	if c.Archive.Enabled && c.Archive.CloudWatch.LogGroupPrefix == "" {
		return fmt.Errorf("cloudwatch archive requires logGroupPrefix")
	}

	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}
