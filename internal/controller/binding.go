package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation makes validator report fields by their json names.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

var errInvalidJSON = util.NewMalformedRequest("Request body must be valid JSON")

// decodeBody unmarshals the request body into dst. An empty body is accepted
// only when allowEmpty is set; otherwise the body must be a non-empty object.
func decodeBody(ctx *gin.Context, dst interface{}, allowEmpty bool) error {
	body, err := ctx.GetRawData()
	if err != nil {
		return errInvalidJSON
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 && allowEmpty {
		return validateStruct(dst)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || probe == nil {
		return errInvalidJSON
	}
	if len(probe) == 0 && !allowEmpty {
		return errInvalidJSON
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return util.NewValidationError(map[string]interface{}{
				field: fmt.Sprintf("%s must be of type %s", field, jsonKind(typeErr.Type)),
			})
		}
		return errInvalidJSON
	}
	return validateStruct(dst)
}

// jsonKind names a Go type the way a JSON client sees it.
func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "value"
	}
}

func bindObject(ctx *gin.Context, dst interface{}) error {
	return decodeBody(ctx, dst, false)
}

func validateStruct(dst interface{}) error {
	err := binding.Validator.ValidateStruct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return util.NewMalformedRequest("%s", err.Error())
	}
	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describeFieldError(fe)
	}
	return util.NewValidationError(fields)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// identity values set by middleware.Identity.
func userID(ctx *gin.Context) string {
	if v := ctx.GetString(util.CtxUserID); v != "" {
		return v
	}
	return util.AnonymousUser
}

func studentID(ctx *gin.Context) string {
	return ctx.GetString(util.CtxStudentID)
}

// queryFlag reads a boolean query parameter; only "true" (any case) is true.
func queryFlag(ctx *gin.Context, key string, fallback bool) bool {
	v, ok := ctx.GetQuery(key)
	if !ok {
		return fallback
	}
	return strings.EqualFold(v, "true")
}
