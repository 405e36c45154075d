package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

type GenerationConfig struct {
	OperationDays int   `mapstructure:"operation_days"`
	Adjustments   int   `mapstructure:"adjustments"`
	Seed          int64 `mapstructure:"seed"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
	// Replace remove a coleção antes de carregar um novo arquivo.
	Replace bool `mapstructure:"replace"`
}

type S3Config struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Endpoint string `mapstructure:"endpoint"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Hotel      entities.HotelConfig `mapstructure:"hotel"`
	Generation GenerationConfig     `mapstructure:"generation"`
	Mongo      MongoConfig          `mapstructure:"mongo"`
	S3         S3Config             `mapstructure:"s3"`
	HTTP       HTTPConfig           `mapstructure:"http"`
	Log        LogConfig            `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	hotel := entities.DefaultHotelConfig()
	v.SetDefault("hotel.floors", hotel.Floors)
	v.SetDefault("hotel.rooms_per_floor", hotel.RoomsPerFloor)
	v.SetDefault("hotel.deluxe_from_floor", hotel.DeluxeFromFloor)
	v.SetDefault("hotel.suite_from_floor", hotel.SuiteFromFloor)
	v.SetDefault("hotel.presidential_from_floor", hotel.PresidentialFromFloor)
	v.SetDefault("hotel.cctv_per_floor", hotel.CCTVPerFloor)
	v.SetDefault("hotel.access_controls", hotel.AccessControls)
	v.SetDefault("hotel.elevators", hotel.Elevators)
	v.SetDefault("hotel.delivery_robots", hotel.DeliveryRobots)
	v.SetDefault("hotel.occupied_rooms", hotel.OccupiedRooms)

	v.SetDefault("generation.operation_days", 30)
	v.SetDefault("generation.adjustments", 20000)
	v.SetDefault("generation.seed", 0)

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "hotel")
	v.SetDefault("mongo.replace", true)

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "snapshots")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("http.addr", ":8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load lê o YAML opcional em path e aplica as variáveis de ambiente por cima
// (hotel.floors -> HOTEL_FLOORS, mongo.uri -> MONGO_URI).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("falha ao ler configuração %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao decodificar configuração: %w", err)
	}

	if err := cfg.Hotel.Validate(); err != nil {
		return nil, err
	}
	if cfg.Generation.OperationDays < 0 || cfg.Generation.Adjustments < 0 {
		return nil, fmt.Errorf("%w: tamanhos de geração não podem ser negativos", entities.ErrInvalidConfig)
	}

	return &cfg, nil
}

// RequireMongo e RequireS3 validam o que cada entrypoint precisa.
func (c *Config) RequireMongo() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("%w: variável de ambiente MONGO_URI não definida", entities.ErrInvalidConfig)
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("%w: variável de ambiente MONGO_DATABASE não definida", entities.ErrInvalidConfig)
	}
	return nil
}

func (c *Config) RequireS3() error {
	if c.S3.Bucket == "" {
		return fmt.Errorf("%w: variável de ambiente S3_BUCKET não definida", entities.ErrInvalidConfig)
	}
	return nil
}
