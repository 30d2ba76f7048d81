package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	phonePattern        = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,13}$`)
	phoneSeparators     = strings.NewReplacer(" ", "", "-", "")
	ticketNumberPattern = regexp.MustCompile(`^TKT-\d{8}-\d{4}$`)
)

// FieldErrors holds one message per invalid field, keyed by JSON field name.
type FieldErrors map[string]string

// Details converts the errors to the envelope shape.
func (fe FieldErrors) Details() map[string][]string {
	if len(fe) == 0 {
		return nil
	}
	out := make(map[string][]string, len(fe))
	for field, msg := range fe {
		out[field] = []string{msg}
	}
	return out
}

// Fields returns the invalid field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for field := range fe {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Err returns a validation DomainError, or nil when there are no errors.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return apperrors.NewValidationError("", fe.Details())
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "idphone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	mustRegister(v, "ticketnumber", func(fl validator.FieldLevel) bool {
		return ticketNumberPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	mustRegister(v, "ticketcategory", func(fl validator.FieldLevel) bool {
		return domain.TicketCategory(fl.Field().String()).Valid()
	})
	mustRegister(v, "ticketpriority", func(fl validator.FieldLevel) bool {
		return domain.TicketPriority(fl.Field().String()).Valid()
	})
	mustRegister(v, "ticketstatus", func(fl validator.FieldLevel) bool {
		return domain.TicketStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "borrowstatus", func(fl validator.FieldLevel) bool {
		return domain.BorrowStatus(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

// IsPhone reports whether s is an Indonesian phone number once spaces and dashes are removed.
func IsPhone(s string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(s))
}

// IsTicketNumber reports whether s has the TKT-YYYYMMDD-NNNN shape.
func IsTicketNumber(s string) bool {
	return ticketNumberPattern.MatchString(s)
}

// Struct validates s and translates failures into FieldErrors.
// The validator reports at most one failing rule per field, the first in tag order.
func Struct(s any) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe.Field(), fe.Tag(), fe.Param())
	}
	return out
}
