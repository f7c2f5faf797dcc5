package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Aman-s12345/go-routegen/internal/logging"
	"github.com/Aman-s12345/go-routegen/internal/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "routegen.toml", `root_namespace = "example.com/shop/http/controllers"
output_format = "yaml"
introspector = "packages"
controllers = ["example.com/shop/http/controllers.UserController"]
workers = 2

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shop/http/controllers", cfg.RootNamespace)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, IntrospectorPackages, cfg.Introspector)
	assert.Equal(t, []string{"example.com/shop/http/controllers.UserController"}, cfg.Controllers)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, logging.LevelDebug, cfg.Logging.Level)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "routegen.json", `{
  "root_namespace": "App\\Http\\Controllers\\",
  "output_path": "routes/web.php",
  "append": true,
  "logging": {"format": "json"}
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `App\Http\Controllers\`, cfg.RootNamespace)
	assert.Equal(t, "routes/web.php", cfg.OutputPath)
	assert.True(t, cfg.Appends())
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "routegen.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeFile(t, "routegen.toml", "root_namespace = "))
	assert.ErrorContains(t, err, "parse config")
}

func TestFinalize_Defaults(t *testing.T) {
	cfg := Config{RootNamespace: "app/controllers"}
	require.NoError(t, cfg.Finalize(nil))

	assert.Equal(t, "laravel", cfg.OutputFormat)
	assert.Equal(t, IntrospectorSource, cfg.Introspector)
	assert.Equal(t, ".", cfg.ProjectPath)
	assert.Equal(t, DefaultControllersPattern, cfg.ControllersPattern)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultIgnoreMethods, cfg.IgnoreMethods)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, logging.LevelInfo, cfg.Logging.Level)
	assert.True(t, cfg.Discover())
}

func TestFinalize_Env(t *testing.T) {
	t.Setenv(EnvRootNamespace, "example.com/app/controllers")
	t.Setenv(EnvControllers, "a.UserController, b.PostController ,")
	t.Setenv(EnvWorkers, "8")
	t.Setenv(EnvAppend, "true")
	t.Setenv(EnvOutputPath, "routes.php")
	t.Setenv(EnvIgnoreMethods, "Close")
	t.Setenv(EnvLogLevel, "warn")

	cfg := Config{RootNamespace: "ignored/root", Workers: 2}
	require.NoError(t, cfg.Finalize(nil))

	assert.Equal(t, "example.com/app/controllers", cfg.RootNamespace)
	assert.Equal(t, []string{"a.UserController", "b.PostController"}, cfg.Controllers)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Appends())
	assert.Equal(t, []string{"Close"}, cfg.IgnoreMethods)
	assert.Equal(t, logging.LevelWarn, cfg.Logging.Level)
	assert.False(t, cfg.Discover())
}

func TestFinalize_MalformedEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{EnvWorkers, "many"},
		{EnvCacheSize, "1k"},
		{EnvAppend, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)

			cfg := Config{RootNamespace: "app/controllers"}
			err := cfg.Finalize(nil)
			assert.ErrorIs(t, err, synth.ErrConfiguration)
			assert.ErrorContains(t, err, tt.name)
		})
	}
}

func TestFinalize_OverlayBeatsEnv(t *testing.T) {
	t.Setenv(EnvOutputFormat, "json")
	t.Setenv(EnvRootNamespace, "env/controllers")
	t.Setenv(EnvOutputPath, "env-routes.php")
	t.Setenv(EnvLogFormat, "json")

	cfg := Config{}
	require.NoError(t, cfg.Finalize(&Config{
		OutputFormat:  "yaml",
		RootNamespace: "flag/controllers",
		Logging:       logging.Config{Format: logging.FormatText},
	}))

	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "flag/controllers", cfg.RootNamespace)
	assert.Equal(t, "env-routes.php", cfg.OutputPath)
	assert.Equal(t, logging.FormatText, cfg.Logging.Format)
}

func TestFinalize_OverlayDisablesAppend(t *testing.T) {
	path := writeFile(t, "routegen.toml", `root_namespace = "app/controllers"
output_path = "routes.php"
append = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Appends())

	off := false
	require.NoError(t, cfg.Finalize(&Config{Append: &off}))
	assert.False(t, cfg.Appends())
}

func TestFinalize_Invalid(t *testing.T) {
	appendOn := true
	tests := []struct {
		name string
		cfg  Config
		msg  string
	}{
		{"empty root", Config{}, "root_namespace"},
		{"separator-only root", Config{RootNamespace: `\\`}, "root_namespace"},
		{"root with whitespace", Config{RootNamespace: "App\\Http Controllers"}, "root_namespace"},
		{"unknown format", Config{RootNamespace: "app", OutputFormat: "xml"}, "output_format"},
		{"unknown introspector", Config{RootNamespace: "app", Introspector: "reflect"}, "introspector"},
		{"negative workers", Config{RootNamespace: "app", Workers: -1}, "workers"},
		{"blank controller", Config{RootNamespace: "app", Controllers: []string{""}}, "controllers"},
		{"duplicate controllers", Config{RootNamespace: "app", Controllers: []string{"app.UserController", "app.UserController"}}, "duplicates"},
		{"append to stdout", Config{RootNamespace: "app", Append: &appendOn}, "append"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, synth.ErrConfiguration)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestFinalize_InvalidLogging(t *testing.T) {
	cfg := Config{RootNamespace: "app", Logging: logging.Config{Level: "loud"}}
	assert.ErrorContains(t, cfg.Finalize(nil), "logging")
}

func TestMerge(t *testing.T) {
	on := true
	cfg := Config{
		RootNamespace: "app/controllers",
		OutputFormat:  "laravel",
		Workers:       4,
		Controllers:   []string{"app/controllers.UserController"},
	}
	cfg.Merge(&Config{
		OutputFormat: "json",
		Append:       &on,
		Logging:      logging.Config{Format: logging.FormatJSON},
	})

	assert.Equal(t, "app/controllers", cfg.RootNamespace)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Appends())
	assert.Equal(t, []string{"app/controllers.UserController"}, cfg.Controllers)

	off := false
	cfg.Merge(&Config{Append: &off})
	assert.False(t, cfg.Appends())
	assert.True(t, on)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
}
