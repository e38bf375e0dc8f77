package reimbursement

import (
	"net/http"
	"strconv"

	"go-engnet/internal/middleware"
	reimbursementerrors "go-engnet/internal/reimbursement/errors"
	"go-engnet/internal/shared/apperror"
	"go-engnet/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reimbursement.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reimbursement.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("reimbursement request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReimbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll returns the projected list view: search, tab and column filters from
// the query string, fixed-size pages.
func (h *Handler) GetAll(c *gin.Context) {
	all, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	projected := Project(all, Query{
		Busca: c.Query("busca"),
		Tab:   c.Query("tab"),
		Filters: Filters{
			NomeFuncionario: c.Query("nome_funcionario"),
			Categoria:       c.Query("categoria"),
			Status:          c.Query("status"),
		},
		Page: page,
	})

	meta := response.NewPaginationMeta(int64(projected.TotalItems), projected.Page, projected.PageSize)
	response.Success(c, http.StatusOK, projected.Items, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Update dispatches the shared PATCH route: a body whose status is a decision
// (APPROVED or REJECTED) is an approval flow, anything else is a content edit.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReimbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actor := middleware.ActorFrom(c)

	if req.Status != nil && (*req.Status == StatusApproved || *req.Status == StatusRejected) {
		if req.HasContentFields() {
			h.writeServiceError(c, reimbursementerrors.ErrDecisionAltersContent)
			return
		}

		resp, err := h.service.Decide(c.Request.Context(), actor, c.Param("id"), *req.Status)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.UpdateContent(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
