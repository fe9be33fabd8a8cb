package config

// Config 全局配置结构
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	SaToken  SaTokenConfig  `yaml:"sa_token"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Version string `yaml:"version"`
	Env     string `yaml:"env" validate:"omitempty,oneof=dev test prod"` // dev, test, prod
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port         int    `yaml:"port" validate:"gte=0,lte=65535"`
	Host         string `yaml:"host"`
	ReadTimeout  int    `yaml:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string          `yaml:"driver" validate:"required,oneof=mysql postgres sqlite"` // mysql, postgres, sqlite
	Host            string          `yaml:"host"`
	Port            int             `yaml:"port"`
	Username        string          `yaml:"username"`
	Password        string          `yaml:"password"`
	Database        string          `yaml:"database"` // sqlite 时为文件路径
	Charset         string          `yaml:"charset"`
	MaxIdleConns    int             `yaml:"max_idle_conns"`
	MaxOpenConns    int             `yaml:"max_open_conns"`
	ConnMaxLifetime int             `yaml:"conn_max_lifetime"`
	LogLevel        string          `yaml:"log_level"`      // silent, error, warn, info
	SlowThreshold   int             `yaml:"slow_threshold"` // 慢查询阈值(毫秒)
	Tracing         bool            `yaml:"tracing"`        // 是否启用 otelgorm
	Replicas        []ReplicaConfig `yaml:"replicas"`       // 只读副本，报表查询走副本
}

// ReplicaConfig 只读副本配置
type ReplicaConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // json, console
	Output     string `yaml:"output"` // stdout, file, both
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

// SaTokenConfig SaToken配置
type SaTokenConfig struct {
	TokenName     string `yaml:"token_name"`      // token名称
	Timeout       int64  `yaml:"timeout"`         // token有效期(秒)
	ActiveTimeout int64  `yaml:"active_timeout"`  // token活跃检测超时时间(秒)
	IsConcurrent  bool   `yaml:"is_concurrent"`   // 是否允许同一账号并发登录
	IsShare       bool   `yaml:"is_share"`        // 是否共用token
	MaxLoginCount int    `yaml:"max_login_count"` // 同一账号最大登录数量
	IsLog         bool   `yaml:"is_log"`          // 是否输出日志
}

var globalConfig *Config

// GetConfig 获取全局配置
func GetConfig() *Config {
	return globalConfig
}

// SetConfig 设置全局配置
func SetConfig(cfg *Config) {
	globalConfig = cfg
}
