package reimbursement_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-engnet/internal/reimbursement"
	reimbursementerrors "go-engnet/internal/reimbursement/errors"
	"go-engnet/internal/shared/apperror"
	"go-engnet/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeReimbursementService struct {
	createFn        func(ctx context.Context, actor identity.Actor, req reimbursement.CreateReimbursementRequest) (reimbursement.ReimbursementResponse, error)
	getAllFn        func(ctx context.Context) ([]reimbursement.ReimbursementResponse, error)
	getByIDFn       func(ctx context.Context, id string) (reimbursement.ReimbursementResponse, error)
	updateContentFn func(ctx context.Context, actor identity.Actor, id string, req reimbursement.UpdateReimbursementRequest) (reimbursement.ReimbursementResponse, error)
	decideFn        func(ctx context.Context, actor identity.Actor, id, targetStatus string) (reimbursement.ReimbursementResponse, error)
	deleteFn        func(ctx context.Context, actor identity.Actor, id string) error
}

func (f *fakeReimbursementService) Create(ctx context.Context, actor identity.Actor, req reimbursement.CreateReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
	return f.createFn(ctx, actor, req)
}

func (f *fakeReimbursementService) GetAll(ctx context.Context) ([]reimbursement.ReimbursementResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeReimbursementService) GetByID(ctx context.Context, id string) (reimbursement.ReimbursementResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeReimbursementService) UpdateContent(ctx context.Context, actor identity.Actor, id string, req reimbursement.UpdateReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
	return f.updateContentFn(ctx, actor, id, req)
}

func (f *fakeReimbursementService) Decide(ctx context.Context, actor identity.Actor, id, targetStatus string) (reimbursement.ReimbursementResponse, error) {
	return f.decideFn(ctx, actor, id, targetStatus)
}

func (f *fakeReimbursementService) Delete(ctx context.Context, actor identity.Actor, id string) error {
	return f.deleteFn(ctx, actor, id)
}

func setActor(c *gin.Context, actor identity.Actor) {
	c.Set("user_id_validated", actor.ID)
	c.Set("user_name", actor.Name)
	c.Set("role", actor.Role)
}

func TestReimbursementHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actor := identity.Actor{ID: uuid.New().String(), Name: "Maria Souza", Role: identity.RoleMember}

		svc := &fakeReimbursementService{
			createFn: func(ctx context.Context, a identity.Actor, req reimbursement.CreateReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
				assert.Equal(t, actor.ID, a.ID)
				assert.Equal(t, "Combustível", req.Categoria)
				assert.Equal(t, reimbursement.StatusPending, req.Status)
				return reimbursement.ReimbursementResponse{
					ID:              uuid.New().String(),
					Codigo:          "R001",
					NomeFuncionario: a.Name,
					Categoria:       req.Categoria,
					Status:          req.Status,
				}, nil
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"categoria":"Combustível","descricao":"Abastecimento","valor":"150.50","dataDespesa":"2026-08-10","status":"PENDING"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/reembolsos", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		setActor(c, actor)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got reimbursement.ReimbursementResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "R001", got.Codigo)
		assert.Equal(t, reimbursement.StatusPending, got.Status)
	})

	t.Run("binding rejects terminal status on create", func(t *testing.T) {
		svc := &fakeReimbursementService{}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"categoria":"Combustível","descricao":"x","valor":"10","dataDespesa":"2026-08-10","status":"APPROVED"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/reembolsos", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("binding failure names the missing field", func(t *testing.T) {
		apperror.Init()
		svc := &fakeReimbursementService{}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"descricao":"x","valor":"10","dataDespesa":"2026-08-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/reembolsos", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "Categoria is required", env.Error.Message)
	})

	t.Run("validation error surfaces in envelope", func(t *testing.T) {
		svc := &fakeReimbursementService{
			createFn: func(ctx context.Context, a identity.Actor, req reimbursement.CreateReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
				return reimbursement.ReimbursementResponse{}, reimbursementerrors.ErrInvalidAmount
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"categoria":"Combustível","descricao":"x","valor":"0","dataDespesa":"2026-08-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/reembolsos", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "valor deve ser maior que zero", env.Error.Message)
	})
}

func TestReimbursementHandler_GetAll(t *testing.T) {
	records := []reimbursement.ReimbursementResponse{
		{ID: "1", Codigo: "R001", NomeFuncionario: "Maria Souza", Status: reimbursement.StatusPending},
		{ID: "2", Codigo: "R002", NomeFuncionario: "Carlos Lima", Status: reimbursement.StatusApproved},
	}

	t.Run("applies projection from query params", func(t *testing.T) {
		svc := &fakeReimbursementService{
			getAllFn: func(ctx context.Context) ([]reimbursement.ReimbursementResponse, error) {
				return records, nil
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/reembolsos?busca=maria&tab=PENDING&page=1", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []reimbursement.ReimbursementResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "R001", got[0].Codigo)
	})

	t.Run("returns pagination meta", func(t *testing.T) {
		svc := &fakeReimbursementService{
			getAllFn: func(ctx context.Context) ([]reimbursement.ReimbursementResponse, error) {
				return records, nil
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/reembolsos", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var raw struct {
			Meta struct {
				Total      int64 `json:"total"`
				TotalPages int   `json:"totalPages"`
				Page       int   `json:"page"`
				PageSize   int   `json:"pageSize"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, int64(2), raw.Meta.Total)
		assert.Equal(t, 1, raw.Meta.TotalPages)
		assert.Equal(t, reimbursement.PageSize, raw.Meta.PageSize)
	})
}

func TestReimbursementHandler_Update(t *testing.T) {
	t.Run("decision body dispatches to Decide", func(t *testing.T) {
		admin := identity.Actor{ID: uuid.New().String(), Name: "Carlos Lima", Role: identity.RoleAdmin}
		id := uuid.New().String()

		decided := false
		svc := &fakeReimbursementService{
			decideFn: func(ctx context.Context, a identity.Actor, gotID, targetStatus string) (reimbursement.ReimbursementResponse, error) {
				decided = true
				assert.Equal(t, admin.ID, a.ID)
				assert.Equal(t, id, gotID)
				assert.Equal(t, reimbursement.StatusApproved, targetStatus)
				return reimbursement.ReimbursementResponse{ID: gotID, Status: targetStatus}, nil
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/reembolsos/"+id, strings.NewReader(`{"status":"APPROVED"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}
		setActor(c, admin)

		h.Update(c)

		assert.True(t, decided)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("decision mixed with content fields rejected", func(t *testing.T) {
		svc := &fakeReimbursementService{}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/reembolsos/x", strings.NewReader(`{"status":"APPROVED","valor":"999"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("content body dispatches to UpdateContent", func(t *testing.T) {
		owner := identity.Actor{ID: uuid.New().String(), Name: "Maria Souza", Role: identity.RoleMember}
		id := uuid.New().String()

		svc := &fakeReimbursementService{
			updateContentFn: func(ctx context.Context, a identity.Actor, gotID string, req reimbursement.UpdateReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
				assert.Equal(t, owner.ID, a.ID)
				assert.NotNil(t, req.Descricao)
				assert.Equal(t, "Nova descrição", *req.Descricao)
				return reimbursement.ReimbursementResponse{ID: gotID, Descricao: *req.Descricao}, nil
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/reembolsos/"+id, strings.NewReader(`{"descricao":"Nova descrição"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}
		setActor(c, owner)

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden decision surfaces 403", func(t *testing.T) {
		member := identity.Actor{ID: uuid.New().String(), Name: "Maria Souza", Role: identity.RoleMember}

		svc := &fakeReimbursementService{
			decideFn: func(ctx context.Context, a identity.Actor, id, targetStatus string) (reimbursement.ReimbursementResponse, error) {
				return reimbursement.ReimbursementResponse{}, reimbursementerrors.ErrDecisionRequiresAdmin
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/reembolsos/x", strings.NewReader(`{"status":"REJECTED"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "x"}}
		setActor(c, member)

		h.Update(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}

func TestReimbursementHandler_Delete(t *testing.T) {
	t.Run("conflict keeps envelope message", func(t *testing.T) {
		svc := &fakeReimbursementService{
			deleteFn: func(ctx context.Context, a identity.Actor, id string) error {
				return reimbursementerrors.ErrHasLinkedEntries
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/reembolsos/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Contains(t, env.Error.Message, "lançamentos contábeis")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeReimbursementService{
			deleteFn: func(ctx context.Context, a identity.Actor, id string) error {
				return nil
			},
		}

		h := reimbursement.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/reembolsos/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
