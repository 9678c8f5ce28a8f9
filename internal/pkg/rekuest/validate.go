package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ie-dashboard/backend/internal/pkg/dasherr"
)

var (
	Validate = NewValidator()

	translator ut.Translator
)

func init() {
	uni := ut.New(en.New())
	translator, _ = uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	err := Validate.RegisterTranslation("dashboarddomain", translator, func(ut ut.Translator) error {
		return nil
	}, func(ut ut.Translator, fe validator.FieldError) string {
		return fe.Field() + " must be one of the dashboard domains"
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not register translation for function dashboarddomain")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	for i := 0; i < len(ve); i++ {
		fe := ve[i]

		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidQuery will get the query params from *fiber.Ctx using fiber#QueryParser(),
// and validate it using the validator singleton. If the validation passed it will write
// the unmarshalled query to dest and return a nil, otherwise it will return an error.
// Notice that dest shall always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return dasherr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(dest); err != nil {
		return dasherr.NewInvalidViolations(err)
	}

	return nil
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(dest); err != nil {
		return dasherr.NewInvalidViolations(err)
	}

	return nil
}

type domainRequest struct {
	Domain string `validate:"required,dashboarddomain"`
}

// ValidDomain rejects any path parameter that is not one of the four
// dashboard domains.
func ValidDomain(ctx *fiber.Ctx, domain string) error {
	if err := ValidStruct(ctx, domainRequest{domain}); err != nil {
		return err
	}

	return nil
}
