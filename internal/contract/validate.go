package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one rejected answers-file field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrInvalidRequest wraps the combined validation failures of a request.
var ErrInvalidRequest = errors.New("invalid plan request")

var validate = newValidator()

// newValidator reports field names as they appear in the answers file so
// validation messages match what the user actually wrote.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks a plan request before generation. It returns every
// problem found at once so the user can fix the answers file in one pass;
// generation never starts on an invalid request.
func Validate(req *PlanRequest) []ValidationError {
	var out []ValidationError

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				out = append(out, ValidationError{
					Field:   fieldPath(fe),
					Message: tagMessage(fe),
				})
			}
		} else {
			out = append(out, ValidationError{Field: "request", Message: err.Error()})
		}
	}

	if !req.Clarity.Enabled && !req.Implementation.Enabled && !req.Adoption.Enabled {
		out = append(out, ValidationError{
			Field:   "phases",
			Message: "at least one phase must be enabled",
		})
	}

	if req.StartDate != "" && req.Deadline != "" {
		start, errS := time.Parse("2006-01-02", req.StartDate)
		end, errE := time.Parse("2006-01-02", req.Deadline)
		if errS == nil && errE == nil && !end.After(start) {
			out = append(out, ValidationError{
				Field:   "deadline",
				Message: fmt.Sprintf("must be after start_date %s", req.StartDate),
			})
		}
	}

	if req.Implementation.Enabled &&
		len(req.Implementation.Modules) == 0 &&
		len(req.Implementation.CustomModules) == 0 &&
		req.Implementation.TotalHours == 0 {
		out = append(out, ValidationError{
			Field:   "implementation",
			Message: "enabled but has no modules, custom modules or total hours",
		})
	}

	return out
}

// CombineErrors folds validation errors into a single error value for
// callers that do not render them individually.
func CombineErrors(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

// fieldPath strips the root struct name from the validator namespace,
// e.g. "PlanRequest.clarity.hours" -> "clarity.hours".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i != -1 {
		ns = ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
