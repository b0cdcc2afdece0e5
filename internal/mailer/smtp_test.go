package mailer

import (
	"errors"
	"fmt"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"caseapi/internal/config"
)

func TestNewSMTP(t *testing.T) {
	t.Run("requires host", func(t *testing.T) {
		_, err := NewSMTP(config.SMTPConfig{From: "noreply@clinic.test"})
		assert.Error(t, err)
	})

	t.Run("requires from address", func(t *testing.T) {
		_, err := NewSMTP(config.SMTPConfig{Host: "mail.test"})
		assert.Error(t, err)
	})

	t.Run("valid config", func(t *testing.T) {
		m, err := NewSMTP(config.SMTPConfig{Host: "mail.test", Port: 587, From: "noreply@clinic.test"})
		assert.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"auth 535", &textproto.Error{Code: 535, Msg: "authentication credentials invalid"}, KindAuth},
		{"auth 530", &textproto.Error{Code: 530, Msg: "authentication required"}, KindAuth},
		{"wrapped auth", fmt.Errorf("dial: %w", &textproto.Error{Code: 535, Msg: "bad creds"}), KindAuth},
		{"server busy 421", &textproto.Error{Code: 421, Msg: "try again later"}, KindTransient},
		{"plain error", errors.New("connection refused"), KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestDeliveryErrorUnwrap(t *testing.T) {
	inner := &textproto.Error{Code: 535, Msg: "no"}
	err := &DeliveryError{Kind: KindAuth, Err: inner}

	var te *textproto.Error
	assert.True(t, errors.As(err, &te))
	assert.Contains(t, err.Error(), "AUTH")
}
