package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldError 第一个校验失败的字段
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s=%s]", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", e.Field, e.Tag)
}

// ValidateDTO 校验结构体，只返回第一个失败的字段
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			first := vErrs[0]
			return &FieldError{
				Field: strings.ToLower(first.Field()),
				Tag:   first.Tag(),
				Param: first.Param(),
			}
		}
		return err
	}
	return nil
}

// BindError 将 gin 绑定阶段的校验错误转换为 FieldError
func BindError(err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		first := vErrs[0]
		return &FieldError{
			Field: strings.ToLower(first.Field()),
			Tag:   first.Tag(),
			Param: first.Param(),
		}
	}
	return err
}
