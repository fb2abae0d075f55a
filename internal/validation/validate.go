package validation

// ValidateOutput runs both validation layers on the given output text and
// returns (structural, semantic). The semantic layer only runs when the
// structural layer passes; otherwise the semantic result is an empty valid
// placeholder.
func ValidateOutput(text string) (Result, Result) {
	out, structural := ValidateStructural(text)
	if !structural.Valid {
		return structural, NewResult()
	}
	return structural, ValidateSemantic(out)
}
