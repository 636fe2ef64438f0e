package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type AdministratorController struct {
	Log     log.Log
	UseCase *usecase.AdministratorUseCase
}

func NewAdministratorController(useCase *usecase.AdministratorUseCase, logger log.Log) *AdministratorController {
	return &AdministratorController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AdministratorController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("administrator-controller", "Failed to parse request body", "Login", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	login := result.Data.(*model.LoginResponse)
	return utils.ResponseWithToken(login, "Sesion iniciada", "Credenciales validas", login.Token, fiber.StatusOK, ctx)
}

// RestorePassword handles both halves of the reset flow: ?send-code=true
// mails a fresh code, the plain call consumes it and stores the new password.
func (c *AdministratorController) RestorePassword(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	if ctx.Query("send-code") == "true" {
		request := &model.SendRestoreCodeRequest{AdministratorID: int64(id)}
		result := c.UseCase.SendRestoreCode(ctx.Context(), request)
		if result.Error != nil {
			return utils.ResponseError(result.Error, ctx)
		}
		return utils.Response(result.Data, "Codigo enviado", "El codigo se envio correctamente", fiber.StatusOK, ctx)
	}

	request := new(model.RestorePasswordRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("administrator-controller", "Failed to parse request body", "RestorePassword", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.AdministratorID = int64(id)
	result := c.UseCase.RestorePassword(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Contrasena actualizada", "Los datos se actualizaron correctamente", fiber.StatusOK, ctx)
}
