package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	InternalServerError = 500
)

// 两类根错误：参数错误返回 4xx，存储错误返回 5xx
var (
	ErrValidation = errors.New("参数错误")
	ErrStorage    = errors.New("系统异常，请稍后重试")
)

var (
	ErrNameRequired     = &ValidationError{Field: "name", Reason: "不能为空"}
	ErrTitleRequired    = &ValidationError{Field: "title", Reason: "不能为空"}
	ErrBodyRequired     = &ValidationError{Field: "body", Reason: "不能为空"}
	ErrCategoryNotFound = &ValidationError{Field: "category_id", Reason: "分类不存在"}
	ErrTagNotFound      = &ValidationError{Field: "tag_id", Reason: "标签不存在"}
)

var ErrorMap = map[error]int{
	ErrValidation: BadRequest,
	ErrStorage:    InternalServerError,
}

// ValidationError 请求参数缺失、超长或引用了不存在的记录
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: [%s] %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError 底层存储不可用或写入失败
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Invalid 把任意错误（绑定、校验）归类为参数错误
func Invalid(err error) error {
	if err == nil || errors.Is(err, ErrValidation) {
		return err
	}
	return &ValidationError{Reason: err.Error()}
}
