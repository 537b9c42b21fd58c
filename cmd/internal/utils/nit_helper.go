package utils

const (
	NITMinLength = 8
	NITMaxLength = 10
)

// IsNITValid reports whether nit looks like a Colombian NIT without its
// verification digit: only digits, between 8 and 10 of them.
func IsNITValid(nit string) bool {
	if len(nit) < NITMinLength || len(nit) > NITMaxLength {
		return false
	}
	return IsOnlyNumbers(nit)
}

func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
