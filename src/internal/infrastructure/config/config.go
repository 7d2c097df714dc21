// Package config 載入服務設定（預設值 → .env → 環境變數）
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // 容器內沒有 zoneinfo 時仍可載入 Asia/Seoul

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 環境變數前綴，例如 CLASSPOINTS_DB_DSN
const EnvPrefix = "CLASSPOINTS"

// Config 服務設定
type Config struct {
	HTTPAddress string
	LogLevel    string

	DBDriver        string
	DBDSN           string
	DBSlowThreshold time.Duration

	// CouponSweepSchedule cron 表示式；空字串停用背景掃描（列表查詢仍會掃描）
	CouponSweepSchedule  string
	CouponValidityMonths int

	// Location 決定「一個日曆月」與 cron 的時區
	Location *time.Location
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("http.address", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "classpoints.db")
	v.SetDefault("db.slow_threshold", 200*time.Millisecond)
	v.SetDefault("coupon.sweep_schedule", "@every 10m")
	v.SetDefault("coupon.validity_months", 1)
	v.SetDefault("timezone", "Asia/Seoul")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	return v
}

// Load 讀取設定
//
// dotEnvPath 存在時先以 godotenv 載入（不覆蓋已設定的環境變數）；
// 檔案不存在則略過。
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, fmt.Errorf("config.godotenv(%s): %w", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config.os.Stat(%s): %w", dotEnvPath, err)
		}
	}

	v := newViper()

	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", v.GetString("timezone"), err)
	}

	cfg := &Config{
		HTTPAddress:          v.GetString("http.address"),
		LogLevel:             v.GetString("log.level"),
		DBDriver:             strings.ToLower(v.GetString("db.driver")),
		DBDSN:                v.GetString("db.dsn"),
		DBSlowThreshold:      v.GetDuration("db.slow_threshold"),
		CouponSweepSchedule:  strings.TrimSpace(v.GetString("coupon.sweep_schedule")),
		CouponValidityMonths: v.GetInt("coupon.validity_months"),
		Location:             loc,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported db.driver %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("config: db.dsn is required")
	}
	if c.CouponValidityMonths < 1 {
		return fmt.Errorf("config: coupon.validity_months must be >= 1, got %d", c.CouponValidityMonths)
	}
	return nil
}
