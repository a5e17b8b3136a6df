package subscriber_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

func TestParseNameAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "le guin", want: "le guin"},
		{name: "trimmed", raw: "  Ursula K. Le Guin \n", want: "Ursula K. Le Guin"},
		{name: "unicode", raw: "Jürgen Müller-Lüdenscheidt", want: "Jürgen Müller-Lüdenscheidt"},
		{name: "apostrophe and ampersand", raw: "O'Brien & Sons", want: "O'Brien & Sons"},
		{name: "max length ascii", raw: strings.Repeat("a", subscriber.MaxNameLength), want: strings.Repeat("a", subscriber.MaxNameLength)},
		{name: "max length combining marks", raw: strings.Repeat("e\u0301", subscriber.MaxNameLength), want: strings.Repeat("e\u0301", subscriber.MaxNameLength)},
		{name: "max length multibyte", raw: strings.Repeat("ё", subscriber.MaxNameLength), want: strings.Repeat("ё", subscriber.MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := subscriber.ParseName(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestParseNameRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: " \t\n "},
		{name: "too long", raw: strings.Repeat("a", subscriber.MaxNameLength+1)},
		{name: "too long after trim", raw: " " + strings.Repeat("ё", subscriber.MaxNameLength+1) + " "},
		{name: "nul byte", raw: "le\x00guin"},
		{name: "inner tab", raw: "le\tguin"},
		{name: "inner newline", raw: "le\nguin"},
		{name: "invalid utf-8", raw: "\xff\xfe"},
		{name: "invalid utf-8 inside", raw: "le\xff\xfeguin"},
		{name: "truncated multibyte", raw: "J\xc3"},
	}
	for _, c := range `/()"<>\{}` {
		tests = append(tests, struct {
			name string
			raw  string
		}{name: "forbidden " + string(c), raw: "ursula" + string(c)})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := subscriber.ParseName(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, subscriber.ErrInvalidName)
			assert.Empty(t, n.String())
		})
	}
}

func TestParseNameErrorCarriesInput(t *testing.T) {
	t.Parallel()

	_, err := subscriber.ParseName("<script>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"<script>"`)
}

func TestMustParseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "le guin", subscriber.MustParseName(" le guin ").String())
	assert.Panics(t, func() { subscriber.MustParseName("") })
}
