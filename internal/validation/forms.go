package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Errors is a field-keyed map of human-readable validation messages.
// All fields are validated independently; errors are collected, not
// short-circuited, so the form can show every problem at once.
type Errors map[string]string

// HasErrors reports whether any field failed validation
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

var (
	nameRegexp  = regexp.MustCompile(`^[A-Za-zА-Яа-яЁёІіЇїЄє\s'-]{2,30}$`)
	phoneRegexp = regexp.MustCompile(`^\+?\d{10,15}$`)
)

const forbiddenNameSymbols = "!@#$%^&*()?/;:][}{"

const (
	msgRequired      = "Це поле є обов'язковим."
	msgLettersOnly   = "Використовуйте лише букви."
	msgBadName       = "Введіть коректне ім'я!"
	msgBadSurname    = "Введіть коректне прізвище!"
	msgBadMiddleName = "Введіть коректне по батькові!"
	msgBadEmail      = "Введiть коректний email!"
	msgBadAge        = "Введіть коректний вік!"
	msgBadGender     = "Оберіть стать зі списку!"
	msgBadPhone      = "Введiть коректний номер телефона."
	msgShortPassword = "Пароль повинен бути не менше 6 символiв!"
	msgPasswordsDiff = "Паролi не спiвпадають!"
	msgEnterPassword = "Введіть новий пароль!"
	msgEnterConfirm  = "Введіть підтвердження пароля!"
	msgResetMismatch = "Паролі не збігаються!"
)

// RegistrationForm holds the raw registration fields
type RegistrationForm struct {
	Name            string
	Surname         string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Normalize trims the free-text fields and lowercases the email
func (f *RegistrationForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Surname = strings.TrimSpace(f.Surname)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
}

// Validate checks every field and returns all errors keyed by field name
func (f *RegistrationForm) Validate() Errors {
	errs := Errors{}

	validatePersonName(errs, "name", f.Name, msgBadName)
	validatePersonName(errs, "surname", f.Surname, msgBadSurname)
	ValidateEmailShape(errs, "email", f.Email)

	if f.Phone == "" {
		errs["phone"] = msgRequired
	} else if !phoneRegexp.MatchString(f.Phone) {
		errs["phone"] = msgBadPhone
	}

	if f.Password == "" {
		errs["password"] = msgRequired
	} else if len(f.Password) < 6 {
		errs["password"] = msgShortPassword
	}

	if f.ConfirmPassword == "" {
		errs["confirm_password"] = msgRequired
	} else if f.Password != f.ConfirmPassword {
		errs["confirm_password"] = msgPasswordsDiff
	}

	return errs
}

func validatePersonName(errs Errors, field, value, badMsg string) {
	if value == "" {
		errs[field] = msgRequired
		return
	}
	// Digits and a blacklisted symbol set fail immediately with a generic message
	for _, r := range value {
		if r >= '0' && r <= '9' || strings.ContainsRune(forbiddenNameSymbols, r) {
			errs[field] = msgLettersOnly
			return
		}
	}
	if !nameRegexp.MatchString(value) {
		errs[field] = badMsg
	}
}

// ValidateEmailShape applies the deliberately weak email check the login and
// reset flows share: the address must be present and contain '@' and '.'.
func ValidateEmailShape(errs Errors, field, email string) {
	if email == "" {
		errs[field] = msgRequired
		return
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		errs[field] = msgBadEmail
	}
}

// ProfileForm holds the profile fields a user edits themselves. Age comes in
// as the raw form value so an invalid entry can be re-rendered verbatim.
type ProfileForm struct {
	Name       string
	Surname    string
	MiddleName string
	Phone      string
	Age        string
	Gender     string
	Bio        string
}

// Normalize trims the free-text fields
func (f *ProfileForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Surname = strings.TrimSpace(f.Surname)
	f.MiddleName = strings.TrimSpace(f.MiddleName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Age = strings.TrimSpace(f.Age)
	f.Bio = strings.TrimSpace(f.Bio)
}

// Validate checks every field and returns all errors keyed by field name.
// Middle name, age, gender and bio are optional.
func (f *ProfileForm) Validate() Errors {
	errs := Errors{}

	validatePersonName(errs, "name", f.Name, msgBadName)
	validatePersonName(errs, "surname", f.Surname, msgBadSurname)
	if f.MiddleName != "" {
		validatePersonName(errs, "middle_name", f.MiddleName, msgBadMiddleName)
	}

	if f.Phone == "" {
		errs["phone"] = msgRequired
	} else if !phoneRegexp.MatchString(f.Phone) {
		errs["phone"] = msgBadPhone
	}

	if f.Age != "" {
		age, err := strconv.Atoi(f.Age)
		if err != nil || age < 1 || age > 120 {
			errs["age"] = msgBadAge
		}
	}

	if f.Gender != "" && f.Gender != "M" && f.Gender != "F" {
		errs["gender"] = msgBadGender
	}

	return errs
}

// AgeValue returns the parsed age, 0 when the field was left empty
func (f *ProfileForm) AgeValue() int {
	age, _ := strconv.Atoi(f.Age)
	return age
}

// NewPasswordForm holds the password-reset redemption fields
type NewPasswordForm struct {
	Password        string
	ConfirmPassword string
}

// Validate checks the new password pair
func (f *NewPasswordForm) Validate() Errors {
	errs := Errors{}

	if f.Password == "" {
		errs["password"] = msgEnterPassword
	} else if len(f.Password) < 6 {
		errs["password"] = msgShortPassword
	}

	if f.ConfirmPassword == "" {
		errs["confirm_password"] = msgEnterConfirm
	} else if f.Password != "" && f.ConfirmPassword != f.Password {
		errs["confirm_password"] = msgResetMismatch
	}

	return errs
}

// CooldownMessage formats the remaining reset-request cooldown for display
func CooldownMessage(remainingSeconds int) string {
	return fmt.Sprintf("⏳ Ви зможете надіслати запит знову через %d сек.", remainingSeconds)
}
