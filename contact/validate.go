package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/doucearrivee/contact-api/sanitize"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// availabilities the form is allowed to submit; empty means not specified.
var availabilities = map[string]bool{
	"morning":   true,
	"afternoon": true,
	"evening":   true,
	"flexible":  true,
}

const (
	msgNameTooShort    = "Le nom doit contenir au moins 2 caractères"
	msgEmailInvalid    = "Veuillez entrer une adresse courriel valide"
	msgAvailability    = "Veuillez choisir une disponibilité valide"
	msgMessageTooShort = "Le message doit contenir au moins 10 caractères"
)

// Validate sanitizes the free-text fields then checks every constraint,
// returning either a Submission or the per-field error messages. Markup is
// stripped before the length checks run so tags can't pad a field past its
// minimum.
func Validate(req SubmissionRequest) (Submission, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(sanitize.Strip(req.Name))
	if utf8.RuneCountInString(name) < 2 {
		errs["name"] = append(errs["name"], msgNameTooShort)
	}

	address := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(address) {
		errs["email"] = append(errs["email"], msgEmailInvalid)
	}

	if req.Availability != "" && !availabilities[req.Availability] {
		errs["availability"] = append(errs["availability"], msgAvailability)
	}

	message := strings.TrimSpace(sanitize.Strip(req.Message))
	if utf8.RuneCountInString(message) < 10 {
		errs["message"] = append(errs["message"], msgMessageTooShort)
	}

	if len(errs) > 0 {
		return Submission{}, errs
	}

	return Submission{
		Name:         name,
		Email:        address,
		Availability: req.Availability,
		Message:      message,
	}, nil
}
