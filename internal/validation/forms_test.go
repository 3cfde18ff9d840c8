package validation

import (
	"strings"
	"testing"
)

func validForm() RegistrationForm {
	return RegistrationForm{
		Name:            "Іван",
		Surname:         "Петренко",
		Email:           "ivan@example.com",
		Phone:           "+380501234567",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegistrationFormValid(t *testing.T) {
	form := validForm()
	form.Normalize()

	if errs := form.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestRegistrationFormFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegistrationForm)
		field   string
		message string
	}{
		{
			name:    "empty name",
			mutate:  func(f *RegistrationForm) { f.Name = "" },
			field:   "name",
			message: "Це поле є обов'язковим.",
		},
		{
			name:    "name with digits",
			mutate:  func(f *RegistrationForm) { f.Name = "Іван123" },
			field:   "name",
			message: "Використовуйте лише букви.",
		},
		{
			name:    "name with forbidden symbol",
			mutate:  func(f *RegistrationForm) { f.Name = "Ів@н" },
			field:   "name",
			message: "Використовуйте лише букви.",
		},
		{
			name:    "name too short",
			mutate:  func(f *RegistrationForm) { f.Name = "І" },
			field:   "name",
			message: "Введіть коректне ім'я!",
		},
		{
			name:    "name too long",
			mutate:  func(f *RegistrationForm) { f.Name = strings.Repeat("а", 31) },
			field:   "name",
			message: "Введіть коректне ім'я!",
		},
		{
			name:    "surname with digits",
			mutate:  func(f *RegistrationForm) { f.Surname = "Петренко1" },
			field:   "surname",
			message: "Використовуйте лише букви.",
		},
		{
			name:    "surname too short",
			mutate:  func(f *RegistrationForm) { f.Surname = "П" },
			field:   "surname",
			message: "Введіть коректне прізвище!",
		},
		{
			name:    "email without at sign",
			mutate:  func(f *RegistrationForm) { f.Email = "ivan.example.com" },
			field:   "email",
			message: "Введiть коректний email!",
		},
		{
			name:    "email without dot",
			mutate:  func(f *RegistrationForm) { f.Email = "ivan@example" },
			field:   "email",
			message: "Введiть коректний email!",
		},
		{
			name:    "phone too short",
			mutate:  func(f *RegistrationForm) { f.Phone = "12345" },
			field:   "phone",
			message: "Введiть коректний номер телефона.",
		},
		{
			name:    "phone with letters",
			mutate:  func(f *RegistrationForm) { f.Phone = "+38050abc4567" },
			field:   "phone",
			message: "Введiть коректний номер телефона.",
		},
		{
			name:    "short password",
			mutate:  func(f *RegistrationForm) { f.Password = "12345"; f.ConfirmPassword = "12345" },
			field:   "password",
			message: "Пароль повинен бути не менше 6 символiв!",
		},
		{
			name:    "password mismatch",
			mutate:  func(f *RegistrationForm) { f.ConfirmPassword = "different" },
			field:   "confirm_password",
			message: "Паролi не спiвпадають!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			form.Normalize()

			errs := form.Validate()
			if got := errs[tt.field]; got != tt.message {
				t.Errorf("Expected %q on field %s, got %q (all: %v)", tt.message, tt.field, got, errs)
			}
		})
	}
}

func TestRegistrationFormCollectsAllErrors(t *testing.T) {
	form := RegistrationForm{}
	form.Normalize()

	errs := form.Validate()
	for _, field := range []string{"name", "surname", "email", "phone", "password", "confirm_password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Expected an error for empty field %s", field)
		}
	}
}

func TestNormalizeLowercasesEmail(t *testing.T) {
	form := validForm()
	form.Email = "  Ivan@Example.COM  "
	form.Normalize()

	if form.Email != "ivan@example.com" {
		t.Errorf("Expected normalized email, got %q", form.Email)
	}
}

func TestProfileForm(t *testing.T) {
	valid := func() ProfileForm {
		return ProfileForm{
			Name:       "Іван",
			Surname:    "Петренко",
			MiddleName: "Олегович",
			Phone:      "+380501234567",
			Age:        "27",
			Gender:     "M",
			Bio:        "Займаюся боксом",
		}
	}

	form := valid()
	form.Normalize()
	if errs := form.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors, got %v", errs)
	}
	if form.AgeValue() != 27 {
		t.Errorf("Expected age 27, got %d", form.AgeValue())
	}

	// Middle name, age, gender and bio may be left empty
	form = valid()
	form.MiddleName = ""
	form.Age = ""
	form.Gender = ""
	form.Bio = ""
	form.Normalize()
	if errs := form.Validate(); errs.HasErrors() {
		t.Errorf("Expected optional fields to be skippable, got %v", errs)
	}
	if form.AgeValue() != 0 {
		t.Errorf("Expected zero age for an empty field, got %d", form.AgeValue())
	}

	tests := []struct {
		name    string
		mutate  func(*ProfileForm)
		field   string
		message string
	}{
		{
			name:    "empty name",
			mutate:  func(f *ProfileForm) { f.Name = "" },
			field:   "name",
			message: "Це поле є обов'язковим.",
		},
		{
			name:    "middle name with digits",
			mutate:  func(f *ProfileForm) { f.MiddleName = "Олегович2" },
			field:   "middle_name",
			message: "Використовуйте лише букви.",
		},
		{
			name:    "middle name too short",
			mutate:  func(f *ProfileForm) { f.MiddleName = "О" },
			field:   "middle_name",
			message: "Введіть коректне по батькові!",
		},
		{
			name:    "bad phone",
			mutate:  func(f *ProfileForm) { f.Phone = "12345" },
			field:   "phone",
			message: "Введiть коректний номер телефона.",
		},
		{
			name:    "non-numeric age",
			mutate:  func(f *ProfileForm) { f.Age = "двадцять" },
			field:   "age",
			message: "Введіть коректний вік!",
		},
		{
			name:    "age out of range",
			mutate:  func(f *ProfileForm) { f.Age = "150" },
			field:   "age",
			message: "Введіть коректний вік!",
		},
		{
			name:    "unknown gender",
			mutate:  func(f *ProfileForm) { f.Gender = "X" },
			field:   "gender",
			message: "Оберіть стать зі списку!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid()
			tt.mutate(&form)
			form.Normalize()

			errs := form.Validate()
			if got := errs[tt.field]; got != tt.message {
				t.Errorf("Expected %q on field %s, got %q (all: %v)", tt.message, tt.field, got, errs)
			}
		})
	}
}

func TestNewPasswordForm(t *testing.T) {
	tests := []struct {
		name    string
		form    NewPasswordForm
		field   string
		message string
	}{
		{
			name:    "missing password",
			form:    NewPasswordForm{ConfirmPassword: "secret1"},
			field:   "password",
			message: "Введіть новий пароль!",
		},
		{
			name:    "missing confirmation",
			form:    NewPasswordForm{Password: "secret1"},
			field:   "confirm_password",
			message: "Введіть підтвердження пароля!",
		},
		{
			name:    "short password",
			form:    NewPasswordForm{Password: "123", ConfirmPassword: "123"},
			field:   "password",
			message: "Пароль повинен бути не менше 6 символiв!",
		},
		{
			name:    "mismatch",
			form:    NewPasswordForm{Password: "secret1", ConfirmPassword: "secret2"},
			field:   "confirm_password",
			message: "Паролі не збігаються!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if got := errs[tt.field]; got != tt.message {
				t.Errorf("Expected %q on field %s, got %q", tt.message, tt.field, got)
			}
		})
	}

	valid := NewPasswordForm{Password: "secret1", ConfirmPassword: "secret1"}
	if errs := valid.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got %v", errs)
	}
}

func TestCooldownMessage(t *testing.T) {
	msg := CooldownMessage(42)
	if !strings.Contains(msg, "42") {
		t.Errorf("Expected remaining seconds in message, got %q", msg)
	}
}
