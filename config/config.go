// Package config holds the effective configuration of a single micro-app:
// the app's defaults shallow-merged with the config.json found in its directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xy-planning-network/microapp"
)

// FileName is the name of the per-app override file.
const FileName = "config.json"

// Recognized keys.
const (
	AuthenticateKey      = "authenticate"
	AuthInfoKey          = "authInfo"
	CloseLaunchWindowKey = "closeLaunchWindow"
	ReplacementsKey      = "replacements"
	ServerPortKey        = "serverPort"
	TLSKey               = "tls"
)

// An AppConfig maps configuration keys to values decoded from JSON.
type AppConfig map[string]any

// AuthInfo is the basic authentication material found under AuthInfoKey.
type AuthInfo struct {
	Username string
	// Password is a bcrypt hash.
	Password string
	Realm    string
}

// Merge returns a new AppConfig holding defaults overlaid with overrides.
//
// The merge is shallow: a key present in overrides replaces the default value whole,
// even when both are objects.
func Merge(defaults, overrides AppConfig) AppConfig {
	merged := make(AppConfig, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}

	for k, v := range overrides {
		merged[k] = v
	}

	return merged
}

// Read decodes the config.json found in dir.
//
// A missing or malformed file returns an error wrapping [microapp.ErrBadConfig].
func Read(dir string) (AppConfig, error) {
	fp := filepath.Join(dir, FileName)
	b, err := os.ReadFile(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %s", microapp.ErrBadConfig, microapp.ErrNotExist, fp)
		}
		return nil, fmt.Errorf("%w: %s", microapp.ErrBadConfig, err)
	}

	cfg := make(AppConfig)
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", microapp.ErrBadConfig, fp, err)
	}

	return cfg, nil
}

// Load reads config.json from dir and merges it over defaults.
func Load(dir string, defaults AppConfig) (AppConfig, error) {
	overrides, err := Read(dir)
	if err != nil {
		return nil, err
	}

	return Merge(defaults, overrides), nil
}

// String returns the value at key formatted as a string.
// Missing and null values return "".
func (c AppConfig) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// IsTrue asserts whether the value at key is, ignoring case, "true".
func (c AppConfig) IsTrue(key string) bool {
	return strings.EqualFold(c.String(key), "true")
}

// IsFalse asserts whether the value at key is, ignoring case, "false".
//
// A missing key is neither true nor false.
func (c AppConfig) IsFalse(key string) bool {
	return strings.EqualFold(c.String(key), "false")
}

// TLS reports whether the micro-app serves over TLS.
func (c AppConfig) TLS() bool { return c.IsTrue(TLSKey) }

// Authenticate reports whether requests must pass basic authentication.
func (c AppConfig) Authenticate() bool { return c.IsTrue(AuthenticateKey) }

// KeepLaunchWindow reports whether the launch page stays open after the popup opens.
func (c AppConfig) KeepLaunchWindow() bool { return c.IsFalse(CloseLaunchWindowKey) }

// Port returns the integer at ServerPortKey.
//
// JSON numbers and numeric strings are accepted.
func (c AppConfig) Port() (int, error) {
	v, ok := c[ServerPortKey]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s: %s", microapp.ErrBadConfig, microapp.ErrMissingData, ServerPortKey)
	}

	var port int
	switch t := v.(type) {
	case float64:
		if t != float64(int(t)) {
			return 0, fmt.Errorf("%w: %s %v is not an integer", microapp.ErrBadConfig, ServerPortKey, t)
		}
		port = int(t)
	case int:
		port = t
	case string:
		p, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q: %s", microapp.ErrBadConfig, ServerPortKey, t, err)
		}
		port = p
	default:
		return 0, fmt.Errorf("%w: %s has type %T", microapp.ErrBadConfig, ServerPortKey, v)
	}

	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w: %s %d out of range", microapp.ErrBadConfig, ServerPortKey, port)
	}

	return port, nil
}

// AuthInfo returns the object at AuthInfoKey.
// Absent fields are left as zero values.
func (c AppConfig) AuthInfo() AuthInfo {
	obj, _ := c[AuthInfoKey].(map[string]any)
	sub := AppConfig(obj)

	return AuthInfo{
		Username: sub.String("username"),
		Password: sub.String("password"),
		Realm:    sub.String("realm"),
	}
}

// Replacements returns the string pairs at ReplacementsKey, sorted by key
// so that substitution order is stable across requests.
func (c AppConfig) Replacements() [][2]string {
	obj, _ := c[ReplacementsKey].(map[string]any)
	sub := AppConfig(obj)

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, sub.String(k)})
	}

	return pairs
}
