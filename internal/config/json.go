package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON either as a
// human-readable string ("30s", "1h") or as a number of nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types; it exists so that durations can be written as strings in the file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	AI struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ai,omitempty"`

	Notify struct {
		RelayURL       string   `json:"relay_url"`
		AuthToken      string   `json:"auth_token"`
		FromAddress    string   `json:"from_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"notify,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		AI: AI{
			BaseURL:        jsonCfg.AI.BaseURL,
			APIKey:         jsonCfg.AI.APIKey,
			Model:          jsonCfg.AI.Model,
			RequestTimeout: time.Duration(jsonCfg.AI.RequestTimeout),
		},
		Notify: Notify{
			RelayURL:       jsonCfg.Notify.RelayURL,
			AuthToken:      jsonCfg.Notify.AuthToken,
			FromAddress:    jsonCfg.Notify.FromAddress,
			RequestTimeout: time.Duration(jsonCfg.Notify.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
