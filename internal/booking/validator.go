package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidExperienceID = errors.New("invalid experienceId: expected a UUID")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
)

// MissingFieldsError names every required field absent from a create
// request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

var validate = validator.New()

// RFC 4122: version nibble 1-5, variant nibble 8/9/a/b. The stock uuid
// tags accept any hex layout, so the full pattern is registered
// explicitly.
var experienceIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

func init() {
	_ = validate.RegisterValidation("experience_id", func(fl validator.FieldLevel) bool {
		return experienceIDPattern.MatchString(fl.Field().String())
	})
}

// ValidateCreate checks a create request before it reaches the store:
// required-field presence, the experience reference's UUID format and a
// positive quantity. The submitted amounts are not cross-checked here;
// the pricing contract is advisory.
func ValidateCreate(req CreateRequest) error {
	var missing []string
	if req.ExperienceID == "" {
		missing = append(missing, "experienceId")
	}
	if req.UserID == "" {
		missing = append(missing, "userId")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if req.Subtotal == nil {
		missing = append(missing, "subtotal")
	}
	if req.Taxes == nil {
		missing = append(missing, "taxes")
	}
	if req.Total == nil {
		missing = append(missing, "total")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if err := validate.Var(req.ExperienceID, "experience_id"); err != nil {
		return ErrInvalidExperienceID
	}

	if *req.Quantity < 1 {
		return ErrInvalidQuantity
	}

	return nil
}
