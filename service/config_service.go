package service

import (
	"rimashaar/config"
	"rimashaar/model"

	"github.com/rs/zerolog/log"
)

type ConfigService interface {
	GetConfigManager() *config.ConfigManager
	GetActiveConfig() *model.EnvConfig
	UpdateConfig(patch map[string]any) (*model.EnvConfig, error)
	ReloadConfig() (*model.EnvConfig, error)
}

// ConfigServiceImpl swaps the live configuration. New OTP sessions and
// the rate limiter pick changes up immediately; the backend client and
// CORS keep what they were built with.
type ConfigServiceImpl struct {
	configManager *config.ConfigManager
}

func NewConfigService(cm *config.ConfigManager) ConfigService {
	return &ConfigServiceImpl{configManager: cm}
}

func (s *ConfigServiceImpl) GetConfigManager() *config.ConfigManager {
	return s.configManager
}

func (s *ConfigServiceImpl) GetActiveConfig() *model.EnvConfig {
	return s.configManager.GetConfig()
}

func (s *ConfigServiceImpl) UpdateConfig(patch map[string]any) (*model.EnvConfig, error) {
	next, err := config.Overlay(s.configManager.GetConfig(), patch)
	if err != nil {
		log.Warn().Err(err).Msg("rejected config update")
		return nil, err
	}
	s.configManager.UpdateConfig(next)
	log.Info().Msg("Configs Updated Successfully")
	return next, nil
}

// ReloadConfig rereads the environment, as on startup.
func (s *ConfigServiceImpl) ReloadConfig() (*model.EnvConfig, error) {
	sys, err := config.LoadConfigs()
	if err != nil {
		log.Error().Err(err).Msg("Error Loading Configs")
		return nil, err
	}
	s.configManager.UpdateConfig(sys.Config)
	log.Info().Msg("Configs Loaded Successfully")
	return sys.Config, nil
}
