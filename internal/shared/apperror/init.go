package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	aadharPattern = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

func Init() {
	// Hook into gin's validator so field names follow the json tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("aadhar", func(fl validator.FieldLevel) bool {
			return IsAadhar(fl.Field().String())
		})
		_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
			return IsPAN(fl.Field().String())
		})
	}
}

// IsAadhar reports whether v is a 12 digit Aadhar number.
func IsAadhar(v string) bool {
	return aadharPattern.MatchString(v)
}

// IsPAN reports whether v is a well formed PAN (AAAAA9999A).
func IsPAN(v string) bool {
	return panPattern.MatchString(strings.ToUpper(v))
}
