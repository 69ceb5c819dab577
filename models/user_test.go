package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserInterests(t *testing.T) {
	u := &User{InterestsRaw: `["Education","Ecology"]`}
	assert.Equal(t, []string{"Education", "Ecology"}, u.Interests())

	assert.True(t, u.HasInterest("Education"))
	assert.False(t, u.HasInterest("Health"))
}

func TestUserInterests_EmptyAndMalformed(t *testing.T) {
	assert.Empty(t, (&User{}).Interests())
	assert.Empty(t, (&User{InterestsRaw: "{broken"}).Interests())
	assert.False(t, (&User{InterestsRaw: "{broken"}).HasInterest("Education"))
}
