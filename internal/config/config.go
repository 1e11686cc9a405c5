package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/pamudauposath/portfolio/internal/view"
)

const (
	DefaultPath     = "portfolio.toml"
	defaultPort     = "8080"
	defaultBasePath = "/"
	defaultOutDir   = "dist"
	defaultLogLevel = "info"
)

// Paged configures a paginated section.
type Paged struct {
	PageSize int `toml:"page_size"`
}

// Carousel configures a windowed section.
type Carousel struct {
	Window   int    `toml:"window"`
	Boundary string `toml:"boundary"`
}

// Policy returns the parsed boundary. Load has already validated it.
func (c Carousel) Policy() view.Boundary {
	b, _ := view.ParseBoundary(c.Boundary)
	return b
}

type Sections struct {
	Projects       Paged    `toml:"projects"`
	Experience     Paged    `toml:"experience"`
	Certifications Paged    `toml:"certifications"`
	Skills         Paged    `toml:"skills"`
	OpenSource     Carousel `toml:"opensource"`
	Achievements   Carousel `toml:"achievements"`
}

// Config is the resolved program configuration.
type Config struct {
	Addr                string   `toml:"addr"`
	BasePath            string   `toml:"base_path"`
	OutDir              string   `toml:"out_dir"`
	LogLevel            string   `toml:"log_level"`
	ExperienceStartYear int      `toml:"experience_start_year"`
	TopTechLimit        int      `toml:"top_tech_limit"`
	Sections            Sections `toml:"sections"`
}

// Default returns the settings the site ships with.
func Default() Config {
	return Config{
		Addr:                ":" + defaultPort,
		BasePath:            defaultBasePath,
		OutDir:              defaultOutDir,
		LogLevel:            defaultLogLevel,
		ExperienceStartYear: 2023,
		TopTechLimit:        8,
		Sections: Sections{
			Projects:       Paged{PageSize: 6},
			Experience:     Paged{PageSize: 5},
			Certifications: Paged{PageSize: 6},
			Skills:         Paged{PageSize: 9},
			OpenSource:     Carousel{Window: 3, Boundary: "wrap"},
			Achievements:   Carousel{Window: 3, Boundary: "clamp"},
		},
	}
}

// Load layers the file at path and the environment over Default. An
// empty path falls back to PORTFOLIO_CONFIG, then DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("PORTFOLIO_CONFIG")
	}
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	file, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := decode(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	cfg.BasePath = normalizeBase(cfg.BasePath)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Addr = ":" + port
	}
	if base := strings.TrimSpace(os.Getenv("PORTFOLIO_BASE_PATH")); base != "" {
		cfg.BasePath = base
	}
	if out := strings.TrimSpace(os.Getenv("PORTFOLIO_OUT")); out != "" {
		cfg.OutDir = out
	}
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
}

// normalizeBase makes the base path start and end with a slash.
func normalizeBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// Validate rejects sizes below one and unknown boundary policies.
func (c Config) Validate() error {
	var errs []error
	paged := map[string]Paged{
		"projects":       c.Sections.Projects,
		"experience":     c.Sections.Experience,
		"certifications": c.Sections.Certifications,
		"skills":         c.Sections.Skills,
	}
	for _, name := range []string{"projects", "experience", "certifications", "skills"} {
		if paged[name].PageSize < 1 {
			errs = append(errs, fmt.Errorf("sections.%s.page_size must be positive, got %d", name, paged[name].PageSize))
		}
	}
	carousels := []struct {
		name string
		c    Carousel
	}{
		{"opensource", c.Sections.OpenSource},
		{"achievements", c.Sections.Achievements},
	}
	for _, cc := range carousels {
		if cc.c.Window < 1 {
			errs = append(errs, fmt.Errorf("sections.%s.window must be positive, got %d", cc.name, cc.c.Window))
		}
		if _, err := view.ParseBoundary(cc.c.Boundary); err != nil {
			errs = append(errs, fmt.Errorf("sections.%s.boundary: %w", cc.name, err))
		}
	}
	if c.TopTechLimit < 0 {
		errs = append(errs, fmt.Errorf("top_tech_limit must not be negative"))
	}
	return errors.Join(errs...)
}
