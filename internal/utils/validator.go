package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidateUUID rejects anything that is not a canonical 36-character UUID.
// The stricter length check keeps the urn: and braced forms accepted by
// uuid.Parse out of identifier positions.
func ValidateUUID(id string) error {
	if len(id) != 36 {
		return fmt.Errorf("identifier %q is not a valid UUID", id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("identifier %q is not a valid UUID", id)
	}
	return nil
}

// ValidateUUIDs validates every element of an identifier set.
func ValidateUUIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateUUID(id); err != nil {
			return err
		}
	}
	return nil
}
