package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Geocode configuration for the coordinate resolver
	Geocode *GeocodeConfig `json:"geocode" yaml:"geocode"`

	// Routing configuration for the external driving-route service
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// IPLocate configuration for the IP-geolocation fallback
	IPLocate *IPLocateConfig `json:"ipLocate" yaml:"ipLocate"`

	// Tracking configuration for live position sessions
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// Map configuration for the rendered map surface
	Map *MapConfig `json:"map" yaml:"map"`

	// QRCode configuration for trip share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodeConfig defines the coordinate resolver configuration
type GeocodeConfig struct {
	// Nominatim-compatible search endpoint
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// CountryBias is appended to every candidate query and used as the
	// final country-only fallback query
	CountryBias string `json:"countryBias" yaml:"countryBias"`

	// Timeout per candidate query
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RoutingConfig defines the external routing service configuration
type RoutingConfig struct {
	// OSRM-compatible route endpoint, including the profile segment
	// (e.g. https://router.project-osrm.org/route/v1/driving)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Timeout per route request
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// IPLocateConfig defines the IP-geolocation fallback configuration
type IPLocateConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// TrackingConfig defines live position tracking configuration
type TrackingConfig struct {
	// HighAccuracy requests the device's high-accuracy sampling mode
	HighAccuracy bool `json:"highAccuracy" yaml:"highAccuracy"`

	// MaxSampleAge is the maximum acceptable age of a delivered fix
	MaxSampleAge time.Duration `json:"maxSampleAge" yaml:"maxSampleAge"`

	// AcquisitionTimeout bounds the wait for each sample
	AcquisitionTimeout time.Duration `json:"acquisitionTimeout" yaml:"acquisitionTimeout"`
}

// MapConfig defines the map surface configuration
type MapConfig struct {
	// TileURL is the raster tile source template
	TileURL string `json:"tileUrl" yaml:"tileUrl"`

	// TileAttribution is shown in the rendered UI, required by the tile provider
	TileAttribution string `json:"tileAttribution" yaml:"tileAttribution"`

	// InitialZoom is the fixed zoom applied when the surface is created
	InitialZoom int `json:"initialZoom" yaml:"initialZoom"`

	// FitPadding is the pixel padding applied by the one-time auto-fit
	FitPadding int `json:"fitPadding" yaml:"fitPadding"`

	// DefaultCenter is the static fallback center when no route or live
	// point is known yet
	DefaultCenter struct {
		Lat float64 `json:"lat" yaml:"lat"`
		Lng float64 `json:"lng" yaml:"lng"`
	} `json:"defaultCenter" yaml:"defaultCenter"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GEOCODE_COUNTRYBIAS -> geocode.countryBias (not geocode.countrybias)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Tracking == nil {
		cfg.Tracking = &TrackingConfig{}
	}
	if cfg.Tracking.MaxSampleAge <= 0 {
		cfg.Tracking.MaxSampleAge = 5 * time.Second
	}
	if cfg.Tracking.AcquisitionTimeout <= 0 {
		cfg.Tracking.AcquisitionTimeout = 10 * time.Second
	}

	if cfg.Map == nil {
		cfg.Map = &MapConfig{}
	}
	if cfg.Map.InitialZoom == 0 {
		cfg.Map.InitialZoom = 13
	}
	if cfg.Map.FitPadding == 0 {
		cfg.Map.FitPadding = 40
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
