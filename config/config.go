package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyLedgerURL        = "ledger.url"
	KeyLedgerStaffEmail = "ledger.staff_email"
	KeyLedgerToken      = "ledger.token"
	KeySyncDryRun       = "sync.dry_run_default"
	KeyMappings         = "mappings"
)

type Config struct {
	Ledger   LedgerConfig `mapstructure:"ledger" validate:"required"`
	Sync     SyncConfig   `mapstructure:"sync"`
	Mappings []Mapping    `mapstructure:"mappings"`
}

type LedgerConfig struct {
	URL        string `mapstructure:"url" validate:"required,url"`
	StaffEmail string `mapstructure:"staff_email" validate:"required,email"`
	Token      string `mapstructure:"token"`
}

type SyncConfig struct {
	DryRunDefault bool `mapstructure:"dry_run_default"`
}

// Mapping binds a local billing group to the remote job/task pair used
// when uploading its time.
type Mapping struct {
	Group  string `mapstructure:"group"`
	JobID  string `mapstructure:"job_id"`
	TaskID string `mapstructure:"task_id"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# hoursync configuration
ledger:
  url: "https://ledger.example.com"
  staff_email: "me@example.com"
  # Bearer token for the ledger API. Can also be supplied via the
  # HOURSYNC_LEDGER_TOKEN environment variable or the --token flag.
  token: ""

sync:
  dry_run_default: false

# Billing groups without a mapping are skipped during sync and reported.
mappings: []
#  - group: "acme-dev"
#    job_id: "J-100"
#    task_id: "T-200"
`
}

// MappingIndex returns the mapping lookup keyed by normalized group name.
func (c *Config) MappingIndex() map[string]Mapping {
	out := make(map[string]Mapping, len(c.Mappings))
	for _, mapping := range c.Mappings {
		key := NormalizeGroup(mapping.Group)
		if key == "" {
			continue
		}
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = mapping
	}
	return out
}

// NormalizeGroup collapses whitespace and case so local group names and
// configured mappings compare consistently.
func NormalizeGroup(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(value)), " "))
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateMappings(cfg.Mappings); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLedgerURL, "https://ledger.example.com")
	v.SetDefault(KeySyncDryRun, false)
	v.SetDefault(KeyMappings, []map[string]any{})
}

func validateMappings(mappings []Mapping) error {
	seen := make(map[string]struct{}, len(mappings))
	for i, mapping := range mappings {
		group := NormalizeGroup(mapping.Group)
		if group == "" {
			return fmt.Errorf("validation failed: mappings[%d].group is required", i)
		}
		if _, exists := seen[group]; exists {
			return fmt.Errorf("validation failed: duplicate mapping for group %q", mapping.Group)
		}
		seen[group] = struct{}{}
		if strings.TrimSpace(mapping.JobID) == "" {
			return fmt.Errorf("validation failed: mappings[%d].job_id is required", i)
		}
		if strings.TrimSpace(mapping.TaskID) == "" {
			return fmt.Errorf("validation failed: mappings[%d].task_id is required", i)
		}
	}
	return nil
}
