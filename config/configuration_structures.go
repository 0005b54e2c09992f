package config

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StorageConfig : где лежат сами PDF файлы, provider = s3 | drive
type StorageConfig struct {
	Provider string      `yaml:"provider"`
	S3       S3Config    `yaml:"s3"`
	Drive    DriveConfig `yaml:"drive"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Local     bool   `yaml:"local"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DriveConfig : Google Drive, сервисный аккаунт и папка для загрузок
type DriveConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	FolderID        string `yaml:"folder_id"`
}

type JWTConfig struct {
	SecretKey       string `yaml:"secret_key"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

// SharingConfig : базовый адрес фронтенда для публичных ссылок
type SharingConfig struct {
	PublicBaseURL string `yaml:"public_base_url"`
}

// TTL : время жизни в секундах
type TTL struct {
	Cache      int `yaml:"cache"`
	PresignURL int `yaml:"presign_url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
