package utils

import "strings"

const PetTypeOther = "Other"

var petTypes = []string{"Dog", "Cat", "Rabbit", "Bird", "Reptile", PetTypeOther}

// PetTypes returns the pet types offered on the booking form, in display order.
func PetTypes() []string {
	return append([]string(nil), petTypes...)
}

// NormalizePetType maps a submitted pet type onto the canonical spelling.
// Empty input means the form default (Dog); anything unknown becomes Other.
func NormalizePetType(petType string) string {
	petType = strings.TrimSpace(petType)
	if petType == "" {
		return petTypes[0]
	}
	for _, t := range petTypes {
		if strings.EqualFold(t, petType) {
			return t
		}
	}
	return PetTypeOther
}
