package cimodel

import (
	"reflect"
	"strings"

	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	yamlTagName   = "yaml"
	emptyTagName  = "-"
	subString     = 2
	testTypeTag   = "testtype"
	testTypeError = "{0} must be a known test type"
)

// newValidator returns the struct validator of the CI model with english translations
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()
	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(yamlTagName), ",", subString)[0]
		if name == emptyTagName || name == "" {
			return fld.Name
		}
		return name
	})
	if err := validate.RegisterValidation(testTypeTag, func(fl validator.FieldLevel) bool {
		return core.TestType(fl.Field().String()).Valid()
	}); err != nil {
		return nil, nil, err
	}
	if err := validate.RegisterTranslation(testTypeTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(testTypeTag, testTypeError, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(testTypeTag, fe.Field())
			return t
		}); err != nil {
		return nil, nil, err
	}
	return validate, trans, nil
}
