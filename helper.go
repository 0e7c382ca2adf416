package incfg

// isValidName reports whether name is usable as an option key. Keys are
// non-empty sequences of ASCII letters, digits, underscores and dashes,
// which keeps them safe in the text format and as --flags.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
