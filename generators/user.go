package generators

import (
	"time"

	"datagen/faker"
	"datagen/models"
)

var userStatuses = []string{
	string(models.UserActive),
	string(models.UserInactive),
	string(models.UserSuspended),
}

// countries is the fixed pool used for both user profiles and order
// addresses.
var countries = []string{
	"Vietnam", "Thailand", "Malaysia", "Singapore", "Indonesia", "Philippines",
}

const (
	historyWindow   = 2 * 365 * 24 * time.Hour
	lastLoginWindow = 365 * 24 * time.Hour
)

// NewUser builds one user with an email guaranteed fresh against emails.
// Profile fields are each present or absent by an independent coin flip.
func NewUser(f *faker.Faker, emails *Registry) (models.User, error) {
	email, err := NewUniqueCode(f.Email, emails)
	if err != nil {
		return models.User{}, err
	}

	profile := models.UserProfile{
		Country:   f.Pick(countries),
		Interests: []string{},
	}
	if f.Bool() {
		age := f.IntBetween(13, 80)
		profile.Age = &age
	}
	if f.Bool() {
		profile.Interests = f.Words(f.IntBetween(0, 5))
	}
	if f.Bool() {
		avatar := f.ImageURL()
		profile.Avatar = &avatar
	}

	u := models.User{
		ID:        NewID(),
		Email:     email,
		Name:      f.Name(),
		Profile:   profile,
		Status:    models.UserStatus(f.Pick(userStatuses)),
		CreatedAt: f.PastTime(historyWindow),
		UpdatedAt: f.PastTime(historyWindow),
	}
	if f.Bool() {
		last := f.PastTime(lastLoginWindow)
		u.LastLogin = &last
	}
	return u, nil
}
