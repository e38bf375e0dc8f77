package reimbursementerrors

import (
	"net/http"

	"go-engnet/internal/shared/apperror"
)

var (
	ErrReimbursementNotFound = apperror.New(
		apperror.CodeNotFound,
		"reembolso não encontrado",
		http.StatusNotFound,
	)
	ErrInvalidReimbursementID = apperror.New(
		apperror.CodeInvalidInput,
		"id de reembolso inválido",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"valor deve ser maior que zero",
		http.StatusBadRequest,
	)
	ErrDescriptionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"descricao é obrigatória",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"dataDespesa inválida, formato esperado YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"categoria de reembolso inválida",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"transição de status inválida para o reembolso",
		http.StatusBadRequest,
	)
	ErrTerminalRecordImmutable = apperror.New(
		apperror.CodeInvalidState,
		"reembolso aprovado ou rejeitado não pode mais ser alterado",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"apenas o solicitante ou um administrador pode alterar este reembolso",
		http.StatusForbidden,
	)
	ErrDecisionRequiresAdmin = apperror.New(
		apperror.CodeForbidden,
		"apenas administradores podem aprovar ou rejeitar reembolsos",
		http.StatusForbidden,
	)
	ErrDecisionAltersContent = apperror.New(
		apperror.CodeInvalidInput,
		"aprovação ou rejeição não pode alterar o conteúdo do reembolso",
		http.StatusBadRequest,
	)
	ErrHasLinkedEntries = apperror.New(
		apperror.CodeConflict,
		"não foi possível excluir: o reembolso possui lançamentos contábeis vinculados",
		http.StatusConflict,
	)
)
