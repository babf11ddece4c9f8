package model

import "time"

// EnvConfig holds everything read from the `config` environment variable.
type EnvConfig struct {
	Port             string     `json:"port"`
	Environment      string     `json:"environment"`
	DebugMode        bool       `json:"debug"`
	RateLimiter      bool       `json:"rateLimiter"`
	DefaultPhoneCode string     `json:"defaultPhoneCode"`
	AllowOrigins     []string   `json:"allowOrigins"`
	Api              ApiConfig  `json:"api"`
	Device           DeviceInfo `json:"device"`
	Otp              OtpConfig  `json:"otp"`
}

// ApiConfig points the client at the registration backend.
type ApiConfig struct {
	BaseURL  string        `json:"baseUrl"`
	Language string        `json:"language"`
	Timeout  time.Duration `json:"timeout"`
}

// DeviceInfo is copied verbatim into every RegistrationRequest.
type DeviceInfo struct {
	AppVersion  string `json:"appVersion"`
	DeviceModel string `json:"deviceModel"`
	DeviceToken string `json:"deviceToken"`
	DeviceType  string `json:"deviceType"`
	OsVersion   string `json:"osVersion"`
}

type OtpConfig struct {
	ResendSeconds int           `json:"resendSeconds"`
	SessionTTL    time.Duration `json:"sessionTtl"`
}

func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		Port:             "8080",
		Environment:      "development",
		DefaultPhoneCode: "91",
		AllowOrigins:     []string{"http://localhost:3000"},
		Api: ApiConfig{
			BaseURL:  "https://admin-cp.rimashaar.com/api/v1/",
			Language: "en",
			Timeout:  60 * time.Second,
		},
		Device: DeviceInfo{
			AppVersion:  "1.0",
			DeviceModel: "iPhone",
			DeviceToken: "",
			DeviceType:  "I",
			OsVersion:   "17.0",
		},
		Otp: OtpConfig{
			ResendSeconds: 30,
			SessionTTL:    15 * time.Minute,
		},
	}
}
