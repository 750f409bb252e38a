// Package cpf validates and formats CPF numbers, the Brazilian
// individual taxpayer id. A CPF is 11 decimal digits, the last two
// being check digits computed with a weighted-sum-mod-11 scheme.
package cpf

// Valid reports whether s is a well-formed CPF with correct check
// digits. It is pure: no normalization is applied, so formatted
// inputs ("529.982.247-25") are rejected.
func Valid(s string) bool {
	if len(s) != 11 {
		return false
	}
	digits := make([]int, 11)
	allSame := true
	for i := 0; i < 11; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allSame = false
		}
	}
	// Sequences like "11111111111" satisfy the checksum but are not
	// issued CPFs.
	if allSame {
		return false
	}
	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// checkDigit computes a check digit over digits, weighting from
// len(digits)+1 down to 2.
func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// Format renders a valid-length CPF as xxx.xxx.xxx-xx. Inputs that
// are not 11 characters long are returned unchanged.
func Format(s string) string {
	if len(s) != 11 {
		return s
	}
	return s[:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:]
}
