package authapimodels

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"

	"event-staffing-bff/lib/utils/dateutils"
	"event-staffing-bff/models"
)

var (
	nationalIDRe  = regexp.MustCompile(`^\d{9}$`)
	phoneRe       = regexp.MustCompile(`^\d{10}$`)
	birthDateRe   = regexp.MustCompile(`^\d{2}[./]\d{2}[./]\d{4}$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	specialCharRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type SignUpRequest struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	NationalID      string `json:"national_id"`
	PhoneNumber     string `json:"phone_number"`
	DateOfBirth     string `json:"date_of_birth"`
	CompanyName     string `json:"company_name"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r SignUpRequest) Validate() error {
	if len(r.Username) < 4 {
		return errors.New("username must be at least 4 characters")
	}
	if len(strings.TrimSpace(r.FirstName)) < 2 {
		return errors.New("first name must be at least 2 characters")
	}
	if len(strings.TrimSpace(r.LastName)) < 2 {
		return errors.New("last name must be at least 2 characters")
	}
	if !nationalIDRe.MatchString(r.NationalID) {
		return errors.New("id must be 9 digits")
	}
	if !phoneRe.MatchString(r.PhoneNumber) {
		return errors.New("phone number must be 10 digits")
	}
	if err := r.validateDateOfBirth(); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.CompanyName)) < 2 {
		return errors.New("company name must be at least 2 characters")
	}
	if _, err := models.ParseUserRole(r.Role); err != nil {
		return errors.New("must choose a role")
	}
	if !emailRe.MatchString(r.Email) {
		return errors.New("invalid email address")
	}
	if err := validatePassword(r.Password); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	return nil
}

func (r SignUpRequest) validateDateOfBirth() error {
	if !birthDateRe.MatchString(r.DateOfBirth) {
		return errors.New("date of birth must be in DD/MM/YYYY or DD.MM.YYYY format")
	}
	birth, err := dateutils.ParseDate(r.DateOfBirth)
	if err != nil {
		return errors.New("date of birth is not valid")
	}
	age := dateutils.Age(birth, time.Now())
	if age < 18 || age > 80 {
		return errors.New("age must be between 18 and 80")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !specialCharRe.MatchString(password) {
		return errors.New("password must contain at least one special character")
	}
	hasUpper, hasLower := false, false
	for _, c := range password {
		if unicode.IsUpper(c) {
			hasUpper = true
		}
		if unicode.IsLower(c) {
			hasLower = true
		}
	}
	if !hasUpper || !hasLower {
		return errors.New("password must contain both uppercase and lowercase letters")
	}
	return nil
}

type SignUpResponse struct {
	Message string `json:"message"`
}
