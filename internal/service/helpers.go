package service

import (
	"Quill/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
)

var requiredErrors = map[string]*ValidationError{
	"name":  ErrNameRequired,
	"title": ErrTitleRequired,
	"body":  ErrBodyRequired,
}

// checkInput 校验失败统一转换为 ValidationError
func checkInput(in any) error {
	err := util.ValidateDTO(in)
	if err == nil {
		return nil
	}

	var fe *util.FieldError
	if !errors.As(err, &fe) {
		return Invalid(err)
	}
	if fe.Tag == "required" {
		if sentinel, ok := requiredErrors[fe.Field]; ok {
			return sentinel
		}
		return &ValidationError{Field: fe.Field, Reason: "不能为空"}
	}
	if fe.Tag == "max" {
		return &ValidationError{Field: fe.Field, Reason: "长度不能超过 " + fe.Param + " 个字符"}
	}
	return &ValidationError{Field: fe.Field, Reason: fe.Error()}
}

func storageError(ctx context.Context, op string, err error) error {
	log.ErrorContext(ctx, "storage failure", "op", op, "err", err)
	return &StorageError{Op: op, Err: err}
}
