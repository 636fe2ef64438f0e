package httpError

import "net/http"

type CommonError struct {
	Code    int         `json:"code"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    http.StatusBadRequest,
		Title:   "Conflicto en el registro",
		Message: "La solicitud no es valida",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:    http.StatusUnauthorized,
		Title:   "Accion no autorizada",
		Message: "La accion no esta autorizada",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    http.StatusNotFound,
		Title:   "Recurso no encontrado",
		Message: "El recurso no pudo encontrarse",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    http.StatusConflict,
		Title:   "Conflicto con el servidor",
		Message: "El estado del recurso no permite la operacion",
	}
}

func NewUnprocessableEntity() *CommonError {
	return &CommonError{
		Code:    http.StatusUnprocessableEntity,
		Title:   "Datos no validos",
		Message: "Los datos enviados no pasaron la validacion",
	}
}

// "sevidor" keeps the wording the API has always returned.
func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    http.StatusInternalServerError,
		Title:   "Error de sevidor",
		Message: "Hubo un fallo en el servidor durante el registro de los datos",
	}
}
