package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"rimashaar/model"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs overlays the JSON in the `config` environment variable on top
// of the defaults. A missing variable is not an error.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	envCfg := model.DefaultEnvConfig()

	rawJson := os.Getenv("config")
	if rawJson != "" {
		if err := decodeConfig(rawJson, &envCfg); err != nil {
			return nil, err
		}
	}

	if err := validate(&envCfg); err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

func decodeConfig(rawJson string, target *model.EnvConfig) error {
	var raw map[string]any
	if err := json.Unmarshal([]byte(rawJson), &raw); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return decodeMap(raw, target)
}

func decodeMap(raw map[string]any, target *model.EnvConfig) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Overlay applies patch on top of a copy of base. base is left untouched.
func Overlay(base *model.EnvConfig, patch map[string]any) (*model.EnvConfig, error) {
	next := *base
	next.AllowOrigins = append([]string(nil), base.AllowOrigins...)

	if err := decodeMap(patch, &next); err != nil {
		return nil, err
	}
	if err := validate(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

func validate(cfg *model.EnvConfig) error {
	if cfg.Api.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", cfg.Api.Timeout)
	}
	if cfg.Otp.ResendSeconds <= 0 {
		return fmt.Errorf("otp.resendSeconds must be positive, got %d", cfg.Otp.ResendSeconds)
	}
	return nil
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
