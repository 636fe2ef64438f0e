package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"quotation-service/src/pkg/token"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

// VerifyBearer rejects any request without a valid signed token and stores
// the claim in the request locals.
func VerifyBearer(v *viper.Viper) fiber.Handler {
	secret := v.GetString("jwt.secret")

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		claim, err := token.Verify(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		ctx.Locals("auth", claim)
		return ctx.Next()
	}
}

// GetAdministrator returns the claim VerifyBearer stored, nil on public routes.
func GetAdministrator(ctx *fiber.Ctx) *token.Claim {
	claim, _ := ctx.Locals("auth").(*token.Claim)
	return claim
}
