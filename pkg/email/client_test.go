package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("ops@mediflow.local", Message{
		To:       []string{" biomed@mediflow.local ", ""},
		Subject:  "Maintenance due",
		TextBody: "2 items",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"biomed@mediflow.local"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Maintenance due"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2 items")
}

func TestBuildMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{"no from", "", Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"}},
		{"no recipients", "x@y.z", Message{To: []string{" "}, Subject: "s", TextBody: "b"}},
		{"no subject", "x@y.z", Message{To: []string{"a@b.c"}, TextBody: "b"}},
		{"no body", "x@y.z", Message{To: []string{"a@b.c"}, Subject: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			assert.ErrorIs(t, err, ErrInvalidMessage)
		})
	}
}

func TestSendDisabledWithoutHost(t *testing.T) {
	c := NewSMTPClient(Config{From: "ops@mediflow.local"})
	err := c.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"})
	assert.ErrorIs(t, err, ErrDisabled)
}
