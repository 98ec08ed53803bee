package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_CanViewAllJobs(t *testing.T) {
	assert.True(t, RoleAdmin.CanViewAllJobs())
	assert.True(t, RoleSuperAdmin.CanViewAllJobs())
	assert.False(t, RoleTranslator.CanViewAllJobs())
	assert.False(t, RoleCustomer.CanViewAllJobs())
	assert.False(t, RoleGuest.CanViewAllJobs())
}

func TestSession_IsGuest(t *testing.T) {
	sess := Session{ID: "s1", Role: RoleGuest, ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, sess.IsGuest())

	sess.Role = RoleTranslator
	assert.False(t, sess.IsGuest())
}
