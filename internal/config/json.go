package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Debug   bool   `json:"debug"`
		LogFile string `json:"log_file"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Preferences struct {
			Dir string `json:"dir"`
		} `json:"preferences,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		MetricsAddress string `json:"metrics_address"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress        string   `json:"http_address"`
		APIKey             string   `json:"api_key"`
		RequestTimeout     Duration `json:"request_timeout"`
		BreakerTimeout     Duration `json:"breaker_timeout"`
		BreakerMaxFailures uint32   `json:"breaker_max_failures"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
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
			Debug:   jsonCfg.App.Debug,
			LogFile: jsonCfg.App.LogFile,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Preferences: Preferences{
				Dir: jsonCfg.Storage.Preferences.Dir,
			},
		},
		Server: Server{
			MetricsAddress: jsonCfg.Server.MetricsAddress,
		},
		Adapter: Adapter{
			HTTPAddress:        jsonCfg.Adapter.HTTPAddress,
			APIKey:             jsonCfg.Adapter.APIKey,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			BreakerTimeout:     time.Duration(jsonCfg.Adapter.BreakerTimeout),
			BreakerMaxFailures: jsonCfg.Adapter.BreakerMaxFailures,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
