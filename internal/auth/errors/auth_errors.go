package autherrors

import (
	"net/http"

	"go-engnet/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"email ou senha incorretos",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"token inválido",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"sessão expirada, faça login novamente",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"refresh token inválido",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"usuário não encontrado",
		http.StatusUnauthorized,
	)
	ErrInactiveUser = apperror.New(
		apperror.CodeForbidden,
		"usuário inativo",
		http.StatusForbidden,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"você não tem permissão para acessar este recurso",
		http.StatusForbidden,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"falha ao gerar token",
		http.StatusInternalServerError,
	)
)
