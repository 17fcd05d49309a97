package provider

import (
	"bytes"
	"context"
	"net"
	"testing"
	"voice-notes/internal/config"
	"voice-notes/internal/infra/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		Server:  "127.0.0.1",
		Port:    587,
		Sender:  "alexa@local.test",
		UseTLS:  false,
		UseAuth: false,
		Subject: "Le tue note di Alexa",
	}
}

func TestBuildMessage(t *testing.T) {
	mp := NewSMTPMailProvider(logger.Discard(), testMailConfig())

	msg, err := mp.BuildMessage("someone@example.com", "Le tue note di Alexa", "1 - 01/03/2024 09:00 - B\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: Le tue note di Alexa")
	assert.Contains(t, raw, "alexa@local.test")
	assert.Contains(t, raw, "someone@example.com")
	assert.Contains(t, raw, "1 - 01/03/2024 09:00 - B")
}

func TestBuildMessageRejectsBadAddresses(t *testing.T) {
	mp := NewSMTPMailProvider(logger.Discard(), testMailConfig())

	_, err := mp.BuildMessage("", "s", "b")
	assert.Error(t, err)

	_, err = mp.BuildMessage("not an address", "s", "b")
	assert.Error(t, err)
}

func TestSendFailsWhenServerIsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := testMailConfig()
	cfg.Port = port
	mp := NewSMTPMailProvider(logger.Discard(), cfg)

	err = mp.Send(context.Background(), "someone@example.com", "s", "body")
	assert.Error(t, err)
}
