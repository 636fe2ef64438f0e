package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/model/converter"
	"quotation-service/src/internal/repository"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/mailer"
	"quotation-service/src/pkg/otp"
	"quotation-service/src/pkg/token"
	"quotation-service/src/pkg/utils"
)

type AdministratorUseCase struct {
	Log                     log.Log
	Validate                *validator.Validate
	Config                  *viper.Viper
	PersonRepository        repository.PersonRepository
	AdministratorRepository repository.AdministratorRepository
	Mailer                  mailer.Mailer
	Codes                   otp.Generator
}

func NewAdministratorUseCase(
	logger log.Log,
	validate *validator.Validate,
	cfg *viper.Viper,
	personRepository repository.PersonRepository,
	administratorRepository repository.AdministratorRepository,
	mailClient mailer.Mailer,
	codes otp.Generator,
) *AdministratorUseCase {
	return &AdministratorUseCase{
		Log:                     logger,
		Validate:                validate,
		Config:                  cfg,
		PersonRepository:        personRepository,
		AdministratorRepository: administratorRepository,
		Mailer:                  mailClient,
		Codes:                   codes,
	}
}

func (c *AdministratorUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("administrator-usecase", errObj.Message, "Login", utils.ConvertString(err))
		return result
	}

	person, err := c.PersonRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error finding person: %v", err), "Login", "")
		return result
	}
	if person == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no existe una cuenta con ese correo"
		result.Error = errObj
		c.Log.Error("administrator-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	administrator, err := c.AdministratorRepository.FindByPersonID(ctx, person.PersonID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error finding administrator: %v", err), "Login", "")
		return result
	}
	if administrator == nil {
		result.Error = httpError.NewUnauthorized()
		c.Log.Error("administrator-usecase", "person is not an administrator", "Login", request.Email)
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(administrator.PasswordHash), []byte(request.Password)); err != nil {
		result.Error = httpError.NewUnauthorized()
		c.Log.Error("administrator-usecase", "password mismatch", "Login", request.Email)
		return result
	}

	bearer, err := token.Generate(
		administrator.AdministratorID,
		person.PersonID,
		person.Email,
		c.Config.GetString("app.name"),
		c.Config.GetString("jwt.secret"),
	)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error signing token: %v", err), "Login", "")
		return result
	}

	result.Data = &model.LoginResponse{
		Token: bearer,
		Administrator: &model.AdministratorResponse{
			AdministratorID: administrator.AdministratorID,
			PersonID:        person.PersonID,
		},
		Person: converter.PersonToResponse(person),
	}
	return result
}

// SendRestoreCode mails a fresh code to the administrator. A delivery failure
// leaves the stored code untouched so a stale code can never be mailed out.
func (c *AdministratorUseCase) SendRestoreCode(ctx context.Context, request *model.SendRestoreCodeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("administrator-usecase", errObj.Message, "SendRestoreCode", utils.ConvertString(err))
		return result
	}

	administrator, err := c.AdministratorRepository.FindByID(ctx, request.AdministratorID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error finding administrator: %v", err), "SendRestoreCode", "")
		return result
	}
	if administrator == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("administrador con id %d no encontrado", request.AdministratorID)
		result.Error = errObj
		c.Log.Error("administrator-usecase", errObj.Message, "SendRestoreCode", "")
		return result
	}

	person, err := c.PersonRepository.FindByID(ctx, administrator.PersonID)
	if err != nil || person == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error finding administrator person: %v", err), "SendRestoreCode", "")
		return result
	}

	code := c.Codes.Digits(otp.CodeLength)
	if err := c.Mailer.SendCode(person.Email, "Restauracion de contrasena", code); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error sending code mail: %v", err), "SendRestoreCode", "")
		return result
	}

	if err := c.AdministratorRepository.SaveCode(ctx, administrator.AdministratorID, code); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error saving code: %v", err), "SendRestoreCode", "")
		return result
	}

	result.Data = map[string]string{"message": "codigo enviado"}
	return result
}

func (c *AdministratorUseCase) RestorePassword(ctx context.Context, request *model.RestorePasswordRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("administrator-usecase", errObj.Message, "RestorePassword", utils.ConvertString(err))
		return result
	}

	administrator, err := c.AdministratorRepository.FindByID(ctx, request.AdministratorID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error finding administrator: %v", err), "RestorePassword", "")
		return result
	}
	if administrator == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("administrador con id %d no encontrado", request.AdministratorID)
		result.Error = errObj
		c.Log.Error("administrator-usecase", errObj.Message, "RestorePassword", "")
		return result
	}

	if administrator.Code == nil || *administrator.Code != request.Code {
		result.Error = httpError.NewUnauthorized()
		c.Log.Error("administrator-usecase", "restore code mismatch", "RestorePassword", "")
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error hashing password: %v", err), "RestorePassword", "")
		return result
	}

	if err := c.AdministratorRepository.UpdatePassword(ctx, administrator.AdministratorID, string(hash)); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("administrator-usecase", fmt.Sprintf("Error updating password: %v", err), "RestorePassword", "")
		return result
	}

	result.Data = map[string]string{"message": "contrasena actualizada"}
	return result
}
