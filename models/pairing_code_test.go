package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPairingCodeIsExpired(t *testing.T) {
	active := PairingCode{ExpiresAt: time.Now().Add(time.Hour)}
	expired := PairingCode{ExpiresAt: time.Now().Add(-time.Second)}

	assert.False(t, active.IsExpired())
	assert.True(t, expired.IsExpired())
}

func TestPairingCodeRefreshResetsConsumption(t *testing.T) {
	childID := uint(9)
	pc := PairingCode{
		ID:        42,
		Code:      "482913",
		ParentID:  1,
		ChildID:   &childID,
		ExpiresAt: time.Now().Add(-time.Minute),
		Used:      true,
	}

	pc.Refresh("553207")

	assert.Equal(t, uint(42), pc.ID) // та же строка
	assert.Equal(t, "553207", pc.Code)
	assert.False(t, pc.Used)
	assert.Nil(t, pc.ChildID)
	assert.False(t, pc.IsExpired())
}

func TestParentOTPHelpers(t *testing.T) {
	p := Parent{ID: 1}

	assert.False(t, p.IsOTPValid("553207"))

	p.SetOTP("553207")
	assert.True(t, p.IsOTPValid("553207"))
	assert.False(t, p.IsOTPValid("000000"))

	p.ClearOTP()
	assert.False(t, p.IsOTPValid("553207"))
	assert.Empty(t, p.OTP)
	assert.Nil(t, p.OTPExpiresAt)
}
