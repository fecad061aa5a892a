package waitlist_module

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"backend/commons/apierrors"
	"backend/commons/enums"
)

// Permissive shape: one @ with at least one dot somewhere after it.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("leadmail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func sanitizeField(s string) string {
	return strings.TrimSpace(angleBrackets.Replace(s))
}

// Sanitize trims whitespace and strips angle brackets from every text field.
// Other characters pass through unchanged.
func Sanitize(req SubmitRequest) SubmitRequest {
	req.Name = sanitizeField(req.Name)
	req.Email = sanitizeField(req.Email)
	req.Phone = sanitizeField(req.Phone)
	req.Company = sanitizeField(req.Company)
	req.Plan = sanitizeField(req.Plan)
	req.BiggestChallenge = sanitizeField(req.BiggestChallenge)
	return req
}

// Validate checks a sanitized request and reports the first failure as an
// *apierrors.ApiError with a stable code.
func Validate(req SubmitRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apierrors.BadRequest(enums.MISSING_FIELD, "invalid request")
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apierrors.BadRequest(enums.MISSING_FIELD, fe.Field()+" is required")
	case "max":
		return apierrors.BadRequest(enums.FIELD_TOO_LONG,
			fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "leadmail":
		return apierrors.BadRequest(enums.INVALID_EMAIL, "email address is not valid")
	}
	return apierrors.BadRequest(enums.MISSING_FIELD, "invalid request")
}
