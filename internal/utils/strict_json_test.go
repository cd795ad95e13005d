package utils

import (
	"testing"

	"plate2share/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStrictAcceptsWhitelistedFields(t *testing.T) {
	body := []byte(`{"status":"approved","collected_by":"0f8f1c2e-7a39-4a6e-b7cb-1f9a4f2a6b11"}`)

	req := new(domain.UpdateDonationStatusRequest)
	require.NoError(t, DecodeStrict(body, req))
	require.NotNil(t, req.Status)
	assert.Equal(t, "approved", *req.Status)
}

func TestDecodeStrictRejectsUnknownField(t *testing.T) {
	body := []byte(`{"status":"collected","foo":"bar"}`)

	req := new(domain.UpdateDonationStatusRequest)
	assert.Error(t, DecodeStrict(body, req))
}

func TestDecodeStrictRejectsUnknownUserField(t *testing.T) {
	body := []byte(`{"name":"Alice","password":"sneaky"}`)

	req := new(domain.UpdateUserRequest)
	assert.Error(t, DecodeStrict(body, req))
}
