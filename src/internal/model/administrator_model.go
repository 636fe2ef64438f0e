package model

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SendRestoreCodeRequest struct {
	AdministratorID int64 `json:"-" validate:"required"`
}

type RestorePasswordRequest struct {
	AdministratorID int64  `json:"-" validate:"required"`
	Code            string `json:"code" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// Token travels in the envelope, not in the data block.
type LoginResponse struct {
	Token         string                 `json:"-"`
	Administrator *AdministratorResponse `json:"administrator"`
	Person        *PersonResponse        `json:"person"`
}
