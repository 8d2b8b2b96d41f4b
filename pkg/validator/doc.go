// Package validator holds the form validation used by the account flows:
// plain predicates over user input (IsEmpty, IsValidCPF, IsValidPassword,
// PasswordsMatch, IsValidBirthDate, IsValidFullName) and Rule constructors
// that wrap them with field names and translation metadata.
//
// Predicates are pure and total. They accept any string, never panic and
// never read the clock: date checks take the reference time as an argument so
// callers decide what "now" is.
//
// Rules are evaluated with Apply, which collects every failure into a
// ValidationErrors value that satisfies the error interface. First groups the
// rules of a single field so that only the first failure is reported, which is
// how the sign-up form shows "required" before "invalid".
//
// # Usage
//
//	err := validator.Apply(
//	    validator.First(
//	        validator.Required("cpf", form.CPF),
//	        validator.ValidCPF("cpf", form.CPF),
//	    ),
//	    validator.First(
//	        validator.Required("birthDate", form.BirthDate),
//	        validator.ValidBirthDate("birthDate", form.BirthDate, time.Now()),
//	    ),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.TranslationKey, e.TranslationValues
//	    }
//	}
//
// # Minimum age
//
// MinimumAge is the single source for the sign-up age threshold. Messages
// carry it in TranslationValues["min_age"] so the displayed number always
// matches the enforced one.
package validator
