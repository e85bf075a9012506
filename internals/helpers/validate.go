package helper

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct dipakai controller setelah BodyParser
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
