package rekuest

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ie-dashboard/backend/internal/constant"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	validate.RegisterValidation("dashboarddomain", dashboardDomain)

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

func dashboardDomain(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	_, ok := constant.DomainMap[val]
	return ok
}
