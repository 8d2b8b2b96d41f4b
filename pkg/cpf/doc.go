// Package cpf formats, normalizes and validates CPF numbers (Cadastro de
// Pessoas Físicas), the 11-digit Brazilian individual taxpayer identifier.
//
// A CPF carries nine base digits followed by two check digits. The package
// works with three representations of the same value:
//
//   - raw: whatever the user typed, punctuation included;
//   - normalized: digits only, see Unformat;
//   - masked: "XXX.XXX.XXX-XX", see Format. Format also masks incomplete
//     input, so it can be applied on every keystroke of a form field.
//
// All functions are pure and total: any input string is accepted and no
// function panics or returns an error. They are safe for concurrent use.
//
// # Usage
//
//	cpf.Format("11144477735")      // "111.444.777-35"
//	cpf.Format("1114")             // "111.4"
//	cpf.Unformat("111.444.777-35") // "11144477735"
//	cpf.IsValid("111.444.777-35")  // true
//
// # Validation rules
//
// IsValid requires exactly 11 digits after normalization, rejects the ten
// repeated-digit sequences ("00000000000" … "99999999999") and checks both
// check digits with the modulo 11 weighted sum. Digits past the 11th are
// never silently accepted by IsValid, while Format drops them.
package cpf
