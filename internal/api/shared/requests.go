package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct. A type that implements
// its own Validate method takes precedence over tag-based struct
// validation, so requests with cross-field rules can layer them on top
// of the tags.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}

// ValidateStruct runs tag-based validation only. Request types with a
// custom Validate method call this first so the tag rules still apply.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
