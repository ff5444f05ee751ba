package lots

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CodeMissingName          = "MissingName"
	CodeInsufficientArticles = "InsufficientArticles"
	CodeInvalidPrice         = "InvalidPrice"
)

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateForSave gates every lot save, create and edit alike.
func ValidateForSave(name string, articleIDs []string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Code: CodeMissingName, Message: "lot name is required"}
	}
	if len(articleIDs) < 2 {
		return &ValidationError{Code: CodeInsufficientArticles, Message: "a lot needs at least 2 articles"}
	}
	if !price.IsPositive() {
		return &ValidationError{Code: CodeInvalidPrice, Message: "lot price must be greater than zero"}
	}
	return nil
}
