// Package docnum validates Brazilian document numbers: CPF (individual tax
// id), CNPJ (company tax id) and CEP (postal code).
package docnum

import "strings"

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether s is a valid CPF. Formatting characters are ignored.
func ValidCPF(s string) bool {
	d := Digits(s)
	if len(d) != 11 || allSame(d) {
		return false
	}
	return cpfCheckDigit(d[:9]) == d[9] && cpfCheckDigit(d[:10]) == d[10]
}

// cpfCheckDigit computes the next CPF check digit for the given prefix
// using descending weights starting at len(prefix)+1.
func cpfCheckDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

// ValidCNPJ reports whether s is a valid CNPJ. Formatting characters are ignored.
func ValidCNPJ(s string) bool {
	d := Digits(s)
	if len(d) != 14 || allSame(d) {
		return false
	}
	return cnpjCheckDigit(d[:12]) == d[12] && cnpjCheckDigit(d[:13]) == d[13]
}

// cnpjCheckDigit computes the next CNPJ check digit; weights cycle 9..2
// from the right.
func cnpjCheckDigit(prefix string) byte {
	sum := 0
	weight := 2
	for i := len(prefix) - 1; i >= 0; i-- {
		sum += int(prefix[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

// ValidPostalCode reports whether s has exactly 8 digits once formatting is removed.
func ValidPostalCode(s string) bool {
	return len(Digits(s)) == 8
}

// CompleteCPF appends both check digits to a 9-digit base.
func CompleteCPF(base string) string {
	d := Digits(base)
	if len(d) != 9 {
		return ""
	}
	d += string(cpfCheckDigit(d))
	return d + string(cpfCheckDigit(d))
}

// CompleteCNPJ appends both check digits to a 12-digit base.
func CompleteCNPJ(base string) string {
	d := Digits(base)
	if len(d) != 12 {
		return ""
	}
	d += string(cnpjCheckDigit(d))
	return d + string(cnpjCheckDigit(d))
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
