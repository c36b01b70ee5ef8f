package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagen/faker"
	"datagen/generators"
	"datagen/models"
)

func TestNewUserEmailsUnique(t *testing.T) {
	f := faker.New(41)
	emails := generators.NewRegistry()

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		u, err := generators.NewUser(f, emails)
		require.NoError(t, err)
		assert.False(t, seen[u.Email])
		seen[u.Email] = true
	}
}

func TestNewUserProfileBounds(t *testing.T) {
	f := faker.New(43)
	emails := generators.NewRegistry()

	var sawAge, sawNoAge bool
	for i := 0; i < 200; i++ {
		u, err := generators.NewUser(f, emails)
		require.NoError(t, err)

		if u.Profile.Age != nil {
			assert.GreaterOrEqual(t, *u.Profile.Age, 13)
			assert.LessOrEqual(t, *u.Profile.Age, 80)
			sawAge = true
		} else {
			sawNoAge = true
		}
		assert.NotNil(t, u.Profile.Interests, "interests is a list, possibly empty, never null")
		assert.Contains(t, []models.UserStatus{
			models.UserActive, models.UserInactive, models.UserSuspended,
		}, u.Status)
		assert.False(t, u.ID.IsZero())
	}
	assert.True(t, sawAge, "age should sometimes be present")
	assert.True(t, sawNoAge, "age should sometimes be absent")
}
