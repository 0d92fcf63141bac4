package models

import "errors"

// ErrValidation оборачивается во все ошибки проверки входных данных,
// чтобы обработчики могли отличить их от ошибок базы данных.
var ErrValidation = errors.New("некорректные данные")
