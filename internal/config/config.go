package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Page size choices for images-to-pdf conversion.
const (
	PageSizeFit    = "fit"
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
)

// Image format choices for pdf-to-images conversion.
const (
	ImageFormatPNG = "png"
	ImageFormatJPG = "jpg"
)

// Default values applied to a fresh config and to zero fields after load.
const (
	DefaultDPI     = 150
	MinDPI         = 36
	MaxDPI         = 600
	maxRecentFiles = 10
)

// Config holds the application configuration
type Config struct {
	DefaultOutputDir string   `json:"default_output_dir,omitempty"` // Where results land; empty means next to the input
	Theme            string   `json:"theme,omitempty"`              // UI theme name (e.g., "dark-purple", "nord")
	DPI              int      `json:"dpi,omitempty"`                // Default DPI for pdf-to-images
	ImageFormat      string   `json:"image_format,omitempty"`       // Default format for pdf-to-images (png/jpg)
	PageSize         string   `json:"page_size,omitempty"`          // Default page size for images-to-pdf (fit/a4/letter)
	BackendPath      string   `json:"backend_path,omitempty"`       // Explicit helper executable; empty means discover on PATH
	RecentFiles      []string `json:"recent_files,omitempty"`       // Most-recently-used input files, newest first

	WelcomeShown          bool   `json:"welcome_shown,omitempty"`          // Whether welcome modal has been shown
	LastSeenVersion       string `json:"last_seen_version,omitempty"`      // Last version user has seen changelog for
	NotificationsDisabled bool   `json:"notifications_disabled,omitempty"` // Desktop notifications when an operation completes (on unless disabled)

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pdfzen"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// HistoryPath returns the path to the operation history file, which lives
// next to the config file.
func HistoryPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Exposed for tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		RecentFiles: []string{},
		filePath:    path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Fill zero fields before Validate() since Validate() only reads.
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills zero-valued fields with their defaults.
//
// Thread-safety: NOT thread-safe; must only be called during single-threaded
// initialization, before the Config is shared.
func (c *Config) applyDefaults() {
	if c.RecentFiles == nil {
		c.RecentFiles = []string{}
	}
	if c.DPI == 0 {
		c.DPI = DefaultDPI
	}
	if c.ImageFormat == "" {
		c.ImageFormat = ImageFormatPNG
	}
	if c.PageSize == "" {
		c.PageSize = PageSizeFit
	}
}

// Validate checks the loaded config for values the UI cannot work with.
func (c *Config) Validate() error {
	if c.DPI < MinDPI || c.DPI > MaxDPI {
		return fmt.Errorf("dpi %d out of range [%d, %d]", c.DPI, MinDPI, MaxDPI)
	}
	switch c.ImageFormat {
	case ImageFormatPNG, ImageFormatJPG:
	default:
		return fmt.Errorf("unknown image format %q", c.ImageFormat)
	}
	switch c.PageSize {
	case PageSizeFit, PageSizeA4, PageSizeLetter:
	default:
		return fmt.Errorf("unknown page size %q", c.PageSize)
	}
	if c.DefaultOutputDir != "" {
		if info, err := os.Stat(c.DefaultOutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("default output dir %s is not a directory", c.DefaultOutputDir)
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	// Write to a temp file first so a crash never leaves a torn config.
	tmp := c.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, c.filePath)
}

// AddRecentFile records path as the most recent input. Duplicates move to the
// front; the list is capped at maxRecentFiles.
func (c *Config) AddRecentFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.RecentFiles)+1)
	out = append(out, path)
	for _, p := range c.RecentFiles {
		if p != path {
			out = append(out, p)
		}
	}
	if len(out) > maxRecentFiles {
		out = out[:maxRecentFiles]
	}
	c.RecentFiles = out
}

// GetRecentFiles returns a copy of the recent files list, newest first.
func (c *Config) GetRecentFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string{}, c.RecentFiles...)
}

// ClearRecentFiles empties the recent files list.
func (c *Config) ClearRecentFiles() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RecentFiles = []string{}
}

// HasSeenWelcome returns whether the welcome modal has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown records that the welcome modal has been shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetLastSeenVersion returns the last version the user saw
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records the version the user has seen
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.NotificationsDisabled
}

// SetNotificationsEnabled toggles desktop notifications
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsDisabled = !enabled
}

// GetDefaultOutputDir returns the configured output directory, or "" when
// results should land next to their input.
func (c *Config) GetDefaultOutputDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultOutputDir
}

// SetDefaultOutputDir sets the default output directory
func (c *Config) SetDefaultOutputDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultOutputDir = dir
}

// GetDPI returns the default rasterization DPI
func (c *Config) GetDPI() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DPI
}

// SetDPI sets the default rasterization DPI, clamped into the valid range.
func (c *Config) SetDPI(dpi int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dpi < MinDPI {
		dpi = MinDPI
	}
	if dpi > MaxDPI {
		dpi = MaxDPI
	}
	c.DPI = dpi
}

// GetImageFormat returns the default pdf-to-images format
func (c *Config) GetImageFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ImageFormat
}

// SetImageFormat sets the default pdf-to-images format; unknown values are ignored.
func (c *Config) SetImageFormat(format string) {
	if format != ImageFormatPNG && format != ImageFormatJPG {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ImageFormat = format
}

// GetPageSize returns the default images-to-pdf page size
func (c *Config) GetPageSize() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PageSize
}

// SetPageSize sets the default images-to-pdf page size; unknown values are ignored.
func (c *Config) SetPageSize(size string) {
	switch size {
	case PageSizeFit, PageSizeA4, PageSizeLetter:
	default:
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PageSize = size
}

// GetBackendPath returns the explicit helper path, or "" for PATH discovery.
func (c *Config) GetBackendPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BackendPath
}

// SetBackendPath sets an explicit helper executable path
func (c *Config) SetBackendPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BackendPath = path
}
