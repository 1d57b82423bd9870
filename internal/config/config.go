package config

import "fmt"

type Driver interface {
	Read() (Config, error)
}

// Load reads the config through driver and applies overrides.
func Load(driver Driver, overrides ...func(*Config)) (Config, error) {
	cfg, err := driver.Read()
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	for _, fn := range overrides {
		fn(&cfg)
	}

	return cfg, nil
}
