package i18n

import (
	"errors"
	"testing"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAcceptLanguage_Supported(t *testing.T) {
	cases := map[string]Locale{
		"en":                LocaleEN,
		"EN":                LocaleEN,
		"en-US":             LocaleEN,
		"pl":                LocalePL,
		"pl-PL":             LocalePL,
		"pl;q=0.9,de;q=0.8": LocalePL,
	}
	for header, want := range cases {
		got, err := ResolveAcceptLanguage(header)
		require.NoError(t, err, "header %q", header)
		assert.Equal(t, want, got, "header %q", header)
	}
}

func TestResolveAcceptLanguage_QValueOrder(t *testing.T) {
	// Highest-quality supported language wins.
	loc, err := ResolveAcceptLanguage("pl;q=0.5,en;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, LocaleEN, loc)
}

func TestResolveAcceptLanguage_Unsupported(t *testing.T) {
	for _, header := range []string{"de", "fr-FR", "es,de;q=0.5"} {
		_, err := ResolveAcceptLanguage(header)
		require.Error(t, err, "header %q", header)
		assert.True(t, errors.Is(err, domain.ErrInvalidLocale))
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	}
}

func TestResolveAcceptLanguage_Missing(t *testing.T) {
	_, err := ResolveAcceptLanguage("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLocale))
}

func TestMessage_AllKeysPresentInBothLocales(t *testing.T) {
	for key := range messages[LocaleEN] {
		_, ok := messages[LocalePL][key]
		assert.True(t, ok, "missing pl translation for %s", key)
	}
	for key := range messages[LocalePL] {
		_, ok := messages[LocaleEN][key]
		assert.True(t, ok, "missing en translation for %s", key)
	}
}

func TestMessagef_RendersCode(t *testing.T) {
	body := Messagef(LocaleEN, KeyVerificationBody, "Ala", 123456)
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "Ala")
}
