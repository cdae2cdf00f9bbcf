package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MissingFieldError reports a required body key that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// MalformedBodyError wraps a body that is not a JSON object of the expected shape.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	return "malformed JSON body: " + e.Err.Error()
}

func (e *MalformedBodyError) Unwrap() error { return e.Err }

var tagNamesOnce sync.Once

// UseJSONFieldNames makes validation errors report json keys instead of Go field names.
func UseJSONFieldNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

// BindJSON decodes the body into req and runs its binding tags.
// Required keys should be pointer fields so that an empty string still counts as present.
func BindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MissingFieldError{Field: verrs[0].Field()}
	}
	return &MalformedBodyError{Err: err}
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 0)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// QueryID parses an optional positive integer query parameter. present is false when absent.
func QueryID(c *gin.Context, name string) (id uint, present bool, err error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || v == 0 {
		return 0, true, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(v), true, nil
}
