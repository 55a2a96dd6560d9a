package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var keys = []string{
	"Mklink.title",
	"Mklink.tip",
	"Mklink.error",
	"AbsoluteSymlink.title",
	"AbsoluteSymlink.tip",
	"RelativeSymlink.title",
	"RelativeSymlink.tip",
	"HardLink.title",
	"HardLink.tip",
	"DirectoryJunction.title",
	"DirectoryJunction.tip",
	"InternetShortcut.title",
	"InternetShortcut.tip",
	"ShellShortcut.title",
	"ShellShortcut.tip",
}

func TestLoadNegotiatesLocale(t *testing.T) {
	testCases := []struct {
		Locale string
		Want   string
	}{
		{"", "en-US"},
		{"C", "en-US"},
		{"en-GB", "en-US"},
		{"zh-CN", "zh-CN"},
		{"zh_CN.UTF-8", "zh-CN"},
		{"fr-FR,zh-CN;q=0.8", "zh-CN"},
		{"de_DE@euro", "en-US"},
		{"???", "en-US"},
	}

	for _, tc := range testCases {
		t.Run(tc.Locale, func(t *testing.T) {
			c, err := Load(tc.Locale)
			require.NoError(t, err)
			assert.Equal(t, language.MustParse(tc.Want), c.Tag)
		})
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, tag := range Locales {
		c, err := Load(tag.String())
		require.NoError(t, err)

		for _, key := range keys {
			assert.NotEqual(t, key, c.String(key), "%s is missing %s", tag, key)
		}
	}
}

func TestStringFallsBackToKey(t *testing.T) {
	c, err := Load("en-US")
	require.NoError(t, err)

	assert.Equal(t, "Hard link", c.String("HardLink.title"))
	assert.Equal(t, "Nope.title", c.String("Nope.title"))
}

func TestLocaleFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "zh_CN.UTF-8")
	assert.Equal(t, "zh_CN.UTF-8", LocaleFromEnv())

	t.Setenv("LC_ALL", "en_US.UTF-8")
	assert.Equal(t, "en_US.UTF-8", LocaleFromEnv())
}
