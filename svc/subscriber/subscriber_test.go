package subscriber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

func TestFromForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    subscriber.Form
		wantErr error
	}{
		{name: "valid", form: subscriber.Form{Name: "le guin", Email: "ursula_le_guin@gmail.com"}},
		{name: "missing email", form: subscriber.Form{Name: "le guin"}, wantErr: subscriber.ErrInvalidEmail},
		{name: "missing name", form: subscriber.Form{Email: "ursula_le_guin@gmail.com"}, wantErr: subscriber.ErrInvalidName},
		{name: "empty form", form: subscriber.Form{}, wantErr: subscriber.ErrInvalidName},
		{name: "both invalid reports name", form: subscriber.Form{Name: "{}", Email: "nope"}, wantErr: subscriber.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub, err := subscriber.FromForm(tt.form)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "le guin", sub.Name.String())
			assert.Equal(t, "ursula_le_guin@gmail.com", sub.Email.String())
		})
	}
}

func TestFromFormBothInvalidIsNotEmailError(t *testing.T) {
	t.Parallel()

	_, err := subscriber.FromForm(subscriber.Form{Name: "", Email: ""})
	assert.NotErrorIs(t, err, subscriber.ErrInvalidEmail)
}

func TestNew(t *testing.T) {
	t.Parallel()

	sub := subscriber.New(subscriber.MustParseName("le guin"), subscriber.MustParseEmail("ursula_le_guin@gmail.com"))
	assert.Equal(t, "le guin", sub.Name.String())
	assert.Equal(t, "ursula_le_guin@gmail.com", sub.Email.String())
}
