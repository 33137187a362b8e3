package assistant

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	maxFiles         = 20
	maxMetadataValue = 512
)

var ErrInvalid = errors.New("invalid assistant")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the limits the remote API enforces on assistants.
func (a *Assistant) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if n := len(a.FileIDs) + len(a.Files); n > maxFiles {
		return fmt.Errorf("%w: %d files attached, at most %d allowed", ErrInvalid, n, maxFiles)
	}
	for key, value := range a.Metadata {
		s, ok := value.(string)
		if ok && utf8.RuneCountInString(s) > maxMetadataValue {
			return fmt.Errorf("%w: metadata %q longer than %d characters", ErrInvalid, key, maxMetadataValue)
		}
	}
	return nil
}
