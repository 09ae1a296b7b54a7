// Package config reads service settings from the environment.
// Must* helpers panic through the logger on missing or malformed values; May* helpers warn and fall back
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"reviewtrust/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("CORE_ANALYZE_")
type Conf struct{ prefix string }

// New returns an unprefixed view
func New() Conf { return Conf{} }

// Prefix nests another prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// may parses an optional value; a malformed value is logged and replaced by def
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("invalid value; using default")
		return def
	}
	return v
}

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustPort returns ":<port>" after checking 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require panics on the first missing key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.MustString(k)
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayIntIn returns the value when it lies in [lo,hi], else warns and returns def
func (c Conf) MayIntIn(key string, def, lo, hi int) int {
	v := c.MayInt(key, def)
	if v < lo || v > hi {
		logger.Get().Warn().Str("key", c.key(key)).Int("value", v).Int("min", lo).Int("max", hi).
			Msg("value out of range; using default")
		return def
	}
	return v
}

// MayFloat64 returns the value or def
func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool returns the value or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns the value or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated list, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case-insensitive) and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return ""
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
