package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	AvatarOrigin      string        `env:"AVATAR_ORIGIN,required=true" validate:"required,url"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64" validate:"gt=0"`
	EnrichmentWorkers int           `env:"ENRICHMENT_WORKERS,default=4" validate:"gt=0"`
	AvatarCacheTTL    time.Duration `env:"AVATAR_CACHE_TTL,default=24h"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	ReportInterval    time.Duration `env:"REPORT_INTERVAL,default=1m" validate:"gt=0"`
	CacheGCInterval   time.Duration `env:"CACHE_GC_INTERVAL,default=10m" validate:"gt=0"`
	CensoredWords     string        `env:"CENSORED_WORDS"`
	MaskCharacter     string        `env:"MASK_CHARACTER,default=*"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
	FixturePath       string        `env:"FIXTURE_PATH"`
}

// Validate checks the loaded configuration before anything is wired.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.MaskRune(); err != nil {
		return err
	}
	return nil
}

// WordList splits the configured censored words. Empty config means the
// moderation filter stays off.
func (c Config) WordList() []string {
	if strings.TrimSpace(c.CensoredWords) == "" {
		return nil
	}
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func (c Config) MaskRune() (rune, error) {
	r := []rune(c.MaskCharacter)
	if len(r) != 1 {
		return 0, fmt.Errorf("MASK_CHARACTER must be a single character, got %q", c.MaskCharacter)
	}
	return r[0], nil
}
