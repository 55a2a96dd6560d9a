package resources

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed i18n/*.toml
var files embed.FS

// Locales lists the shipped translations. The first one is the fallback.
var Locales = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("zh-CN"),
}

var matcher = language.NewMatcher(Locales)

// Catalog holds the strings for one locale, keyed as "Table.key".
type Catalog struct {
	Tag     language.Tag
	strings map[string]string
}

// Load returns the catalog that best matches locale, which may be a single
// BCP 47 tag, an Accept-Language style list or a POSIX locale such as
// "zh_CN.UTF-8". Anything unparseable gets the fallback locale.
func Load(locale string) (*Catalog, error) {
	desired, _, err := language.ParseAcceptLanguage(normalize(locale))
	if err != nil {
		desired = nil
	}

	_, index, _ := matcher.Match(desired...)
	tag := Locales[index]

	f, err := files.Open("i18n/" + fileName(tag))
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var tables map[string]map[string]string
	if err := toml.NewDecoder(f).Decode(&tables); err != nil {
		return nil, fmt.Errorf("resources: decode %s: %w", tag, err)
	}

	c := &Catalog{Tag: tag, strings: map[string]string{}}
	for table, entries := range tables {
		for key, value := range entries {
			c.strings[table+"."+key] = value
		}
	}

	return c, nil
}

// LocaleFromEnv reads the user's locale the way POSIX tools do.
func LocaleFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}

	return ""
}

// String looks up key, returning the key itself when there is no
// translation.
func (c *Catalog) String(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}

	return key
}

func normalize(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	if locale == "C" || locale == "POSIX" {
		return ""
	}

	return strings.ReplaceAll(locale, "_", "-")
}

func fileName(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	return base.String() + "-" + region.String() + ".toml"
}
