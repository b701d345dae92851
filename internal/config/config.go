// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds output surface settings.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig holds camera and controller settings.
type CameraConfig struct {
	FovDegrees  float32 `yaml:"fov_degrees"`
	Znear       float32 `yaml:"znear"`
	Zfar        float32 `yaml:"zfar"`
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// AssetsConfig holds resource lookup settings.
type AssetsConfig struct {
	ResDir string `yaml:"res_dir"` // Root directory for models and textures
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			FovDegrees:  45.0,
			Znear:       0.1,
			Zfar:        100.0,
			Speed:       4.0,
			Sensitivity: 0.4,
		},
		Assets: AssetsConfig{
			ResDir: "res",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
