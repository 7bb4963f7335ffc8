package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// 字段级错误文案，与前端表单提示保持一致
var fieldMessages = map[string]string{
	"Email.required":       "Email is required",
	"Email.email":          "Please enter a valid email address",
	"Password.required":    "Password is required",
	"Password.min":         "Password must be at least 6 characters",
	"Name.required":        "Name is required",
	"FamilyID.required":    "Family ID is required",
	"Amount.required":      "Amount is required",
	"Amount.gt":            "Amount must be greater than 0",
	"Description.required": "Description is required",
	"Category.required":    "Category is required",
	"Source.required":      "Income source is required",
	"Role.oneof":           "Role must be admin or member",
	"MonthlyLimit.gte":     "Monthly limit must be 0 or greater",
	"MonthlyBudget.gte":    "Monthly budget must be 0 or greater",
}

// FieldErrors 将绑定错误展开为有序的字段错误列表
func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "", Message: "Invalid request"}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			switch fe.Tag() {
			case "required":
				msg = fmt.Sprintf("%s is required", fe.Field())
			default:
				msg = fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
			}
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// ValidationMessage 取第一条字段错误文案，原样返回给客户端
func ValidationMessage(err error) string {
	return FieldErrors(err)[0].Message
}
