package serializers

import (
	"fmt"
	"sort"
	"strings"
)

// Стандартные сообщения валидации (формат ответа совместим с клиентами)
const (
	MsgRequired          = "This field is required."
	MsgVolumeRequired    = "This field is required if 'weight' is not available."
	MsgWeightRequired    = "This field is required if 'volume' is not available."
	MsgMutuallyExclusive = "Either 'volume' or 'weight' must be provided, not both."
	MsgInvalidDate       = "Date has wrong format. Use this format instead: YYYY-MM-DD."
	MsgTooManyDecimals   = "Ensure that there are no more than 3 decimal places."
)

// NonFieldErrorsKey — ключ общих (не привязанных к полю) ошибок в теле ответа
const NonFieldErrorsKey = "non_field_errors"

// ValidationErrors накапливает ошибки валидации одной записи: списки сообщений
// по полям плюс общие ошибки. Все ошибки собираются за один проход и
// возвращаются вместе, без остановки на первой.
type ValidationErrors struct {
	Fields   map[string][]string
	NonField []string
}

// NewValidationErrors создает пустой накопитель ошибок
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string][]string)}
}

// AddField добавляет ошибку, привязанную к полю
func (v *ValidationErrors) AddField(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// AddNonField добавляет общую ошибку
func (v *ValidationErrors) AddNonField(message string) {
	v.NonField = append(v.NonField, message)
}

// HasErrors сообщает, накоплена ли хотя бы одна ошибка
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Fields) > 0 || len(v.NonField) > 0
}

// OrNil возвращает накопитель как error, либо nil если ошибок нет
func (v *ValidationErrors) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Error реализует интерфейс error
func (v *ValidationErrors) Error() string {
	parts := make([]string, 0, len(v.Fields)+len(v.NonField))
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], " ")))
	}
	parts = append(parts, v.NonField...)
	return strings.Join(parts, "; ")
}

// Body возвращает тело ответа: сообщения по ключам полей, общие ошибки
// под ключом non_field_errors
func (v *ValidationErrors) Body() map[string]interface{} {
	body := make(map[string]interface{}, len(v.Fields)+1)
	for field, messages := range v.Fields {
		body[field] = messages
	}
	if len(v.NonField) > 0 {
		body[NonFieldErrorsKey] = v.NonField
	}
	return body
}
