package authapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSignUp() SignUpRequest {
	return SignUpRequest{
		Username:        "johndoe",
		FirstName:       "John",
		LastName:        "Doe",
		NationalID:      "123456789",
		PhoneNumber:     "0541234567",
		DateOfBirth:     "15/06/1990",
		CompanyName:     "Acme Events",
		Role:            "worker",
		Email:           "john@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	}
}

func TestSignUpValidate(t *testing.T) {
	t.Run(`valid request passes`, func(t *testing.T) {
		require.Nil(t, validSignUp().Validate())
	})

	t.Run(`national id must be exactly 9 digits`, func(t *testing.T) {
		req := validSignUp()
		req.NationalID = "12345678"
		require.NotNil(t, req.Validate())
		req.NationalID = "1234567890"
		require.NotNil(t, req.Validate())
		req.NationalID = "12345678a"
		require.NotNil(t, req.Validate())
	})

	t.Run(`phone number must be 10 digits`, func(t *testing.T) {
		req := validSignUp()
		req.PhoneNumber = "054123456"
		require.NotNil(t, req.Validate())
	})

	t.Run(`date of birth accepts both separators`, func(t *testing.T) {
		req := validSignUp()
		req.DateOfBirth = "15.06.1990"
		require.Nil(t, req.Validate())
		req.DateOfBirth = "1990-06-15"
		require.NotNil(t, req.Validate())
	})

	t.Run(`age bounds`, func(t *testing.T) {
		req := validSignUp()
		req.DateOfBirth = "15/06/2020"
		require.NotNil(t, req.Validate())
		req.DateOfBirth = "15/06/1930"
		require.NotNil(t, req.Validate())
	})

	t.Run(`unknown role is rejected`, func(t *testing.T) {
		req := validSignUp()
		req.Role = "owner"
		require.NotNil(t, req.Validate())
	})

	t.Run(`role is case insensitive`, func(t *testing.T) {
		req := validSignUp()
		req.Role = "Recruiter"
		require.Nil(t, req.Validate())
	})

	t.Run(`password rules`, func(t *testing.T) {
		req := validSignUp()
		req.Password, req.ConfirmPassword = "Sh0rt!", "Sh0rt!"
		require.NotNil(t, req.Validate())

		req.Password, req.ConfirmPassword = "NoSpecial1", "NoSpecial1"
		require.NotNil(t, req.Validate())

		req.Password, req.ConfirmPassword = "alllower!1", "alllower!1"
		require.NotNil(t, req.Validate())

		req.Password, req.ConfirmPassword = "ALLUPPER!1", "ALLUPPER!1"
		require.NotNil(t, req.Validate())
	})

	t.Run(`passwords must match`, func(t *testing.T) {
		req := validSignUp()
		req.ConfirmPassword = "Other!pass1"
		require.NotNil(t, req.Validate())
	})

	t.Run(`invalid email is rejected`, func(t *testing.T) {
		req := validSignUp()
		req.Email = "john@"
		require.NotNil(t, req.Validate())
	})
}

func TestSignInValidate(t *testing.T) {
	t.Run(`valid request passes`, func(t *testing.T) {
		req := SignInRequest{Username: "johndoe", Password: "password123"}
		require.Nil(t, req.Validate())
	})

	t.Run(`short username or password is rejected`, func(t *testing.T) {
		require.NotNil(t, SignInRequest{Username: "joe", Password: "password123"}.Validate())
		require.NotNil(t, SignInRequest{Username: "johndoe", Password: "short"}.Validate())
	})
}
