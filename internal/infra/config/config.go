package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultIntervalMinutes = 60

type Config struct {
	DiscordToken string
	DiscordGuild string
	DiscordUser  string

	IntervalMinutes int
	Interval        time.Duration
	Nicknames       []string

	HTTPAddr string // opcional, vacío = sin servidor de status
	Trace    bool   // loguea la latencia de cada llamada a Discord
}

// Load lee el entorno y aborta el proceso si falta algo obligatorio.
func Load() Config {
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// FromEnv arma la Config a partir de getenv (os.Getenv en producción).
func FromEnv(getenv func(string) string) (Config, error) {
	var missing []string
	get := func(k string, req bool) string {
		v := strings.TrimSpace(getenv(k))
		if v == "" && req {
			missing = append(missing, k)
		}
		return v
	}

	cfg := Config{
		DiscordToken: get("BOT_TOKEN", true),
		DiscordGuild: get("GUILD_ID", true),
		DiscordUser:  get("USER_ID", true),
		HTTPAddr:     get("HTTP_ADDR", false),
		Trace:        parseBool(get("DISCORD_TRACE", false)),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("faltante env %s", strings.Join(missing, ", "))
	}

	cfg.IntervalMinutes = parseInterval(get("INTERVAL_MINUTES", false))
	cfg.Interval = time.Duration(cfg.IntervalMinutes) * time.Minute

	cfg.Nicknames = ParseNicknames(get("NICKNAMES", false))
	if len(cfg.Nicknames) == 0 {
		if path := get("NICKNAMES_FILE", false); path != "" {
			names, err := LoadNicknamesFile(path)
			if err != nil {
				return Config{}, err
			}
			cfg.Nicknames = names
		}
	}
	if len(cfg.Nicknames) == 0 {
		return Config{}, errors.New("NICKNAMES (o NICKNAMES_FILE) no tiene ningún nickname")
	}
	return cfg, nil
}

// ParseNicknames separa por coma o salto de línea y descarta vacíos.
func ParseNicknames(raw string) []string {
	out := []string{}
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// LoadNicknamesFile acepta una lista YAML suelta o una clave `nicknames:`.
func LoadNicknamesFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nicknames file: %w", err)
	}

	var list []string
	if err := yaml.Unmarshal(b, &list); err != nil {
		var doc struct {
			Nicknames []string `yaml:"nicknames"`
		}
		if err2 := yaml.Unmarshal(b, &doc); err2 != nil {
			return nil, fmt.Errorf("nicknames file %s: %w", path, err2)
		}
		list = doc.Nicknames
	}

	out := make([]string, 0, len(list))
	for _, n := range list {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out, nil
}

// parseInterval toma los dígitos iniciales ("30min" = 30, "1.5" = 1); sin dígitos o <= 0 usa el default.
func parseInterval(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil || n <= 0 {
		return DefaultIntervalMinutes
	}
	return n
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}
