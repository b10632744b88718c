package xsltmsg

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a (language, region) pair used only to pick a catalog variant.
// The zero value is the root locale, which always selects the base catalog.
type Locale struct {
	Language string
	Region   string
}

// NewLocale normalizes case: lower-case language, upper-case region.
func NewLocale(lang string, region string) Locale {
	return Locale{
		Language: strings.ToLower(strings.TrimSpace(lang)),
		Region:   strings.ToUpper(strings.TrimSpace(region)),
	}
}

// ParseLocale accepts POSIX and BCP 47 spellings ("fr_CA", "zh-TW",
// "ja_JP.UTF-8", "de_DE@euro"). Only a region that is spelled out is kept.
// Language codes keep their spelling: "iw" stays "iw" and selects an
// "_iw" catalog, it is not rewritten to "he".
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, ".@"); idx >= 0 {
		s = s[:idx]
	}
	switch strings.ToUpper(s) {
	case "", "C", "POSIX", "UND":
		return Locale{}, nil
	}

	tag, err := language.Raw.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	base, _ := tag.Base()
	loc := Locale{Language: base.String()}
	if region, confidence := tag.Region(); confidence == language.Exact {
		loc.Region = region.String()
	}
	if loc.Language == "und" {
		loc.Language = ""
	}
	return loc, nil
}

// MustParseLocale is ParseLocale for constants; it panics on bad input.
func MustParseLocale(s string) Locale {
	loc, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// LocaleFromEnv derives the process locale from LC_ALL, LC_MESSAGES and
// LANG, first non-empty wins. Unparsable values yield the root locale.
func LocaleFromEnv() Locale {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		loc, err := ParseLocale(value)
		if err != nil {
			return Locale{}
		}
		return loc
	}
	return Locale{}
}

func (l Locale) IsRoot() bool {
	return l.Language == ""
}

func (l Locale) String() string {
	if l.Language == "" {
		return ""
	}
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "_" + l.Region
}

// UnmarshalYAML allows catalog files to carry the locale as a plain string
// (locale: zh_TW).
func (l *Locale) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	if v == nil {
		*l = Locale{}
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("locale must be a string, got %T", v)
	}
	parsed, err := ParseLocale(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
