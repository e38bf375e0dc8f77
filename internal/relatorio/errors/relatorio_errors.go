package relatorioerrors

import (
	"net/http"

	"go-engnet/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"relatório não encontrado",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"id de relatório inválido",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"categoria de relatório inválida",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"período de relatório inválido",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status de relatório inválido",
		http.StatusBadRequest,
	)
	ErrTypeOutsideCategory = apperror.New(
		apperror.CodeInvalidInput,
		"tipo de relatório não pertence à categoria informada",
		http.StatusBadRequest,
	)
)
