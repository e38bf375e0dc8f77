package reimbursement_test

import (
	"fmt"
	"testing"

	"go-engnet/internal/reimbursement"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []reimbursement.ReimbursementResponse {
	return []reimbursement.ReimbursementResponse{
		{ID: "1", Codigo: "R001", NomeFuncionario: "Maria Souza", Categoria: "Combustível", Descricao: "Abastecimento semanal", Status: reimbursement.StatusPending},
		{ID: "2", Codigo: "R002", NomeFuncionario: "Carlos Lima", Categoria: "Alimentação", Descricao: "Almoço com cliente", Status: reimbursement.StatusApproved},
		{ID: "3", Codigo: "R003", NomeFuncionario: "Maria Souza", Categoria: "Transporte", Descricao: "Corrida ao aeroporto", Status: reimbursement.StatusRejected},
		{ID: "4", Codigo: "R004", NomeFuncionario: "Ana Pereira", Categoria: "Combustível", Descricao: "Visita técnica", Status: reimbursement.StatusPending},
		{ID: "5", Codigo: "R005", NomeFuncionario: "João Alves", Categoria: "Hospedagem", Descricao: "Duas diárias em Recife", Status: reimbursement.StatusDraft},
	}
}

func ids(items []reimbursement.ReimbursementResponse) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.ID
	}
	return out
}

func TestProject_EmptyQueryReturnsEverythingInOrder(t *testing.T) {
	all := sampleRecords()

	result := reimbursement.Project(all, reimbursement.Query{Page: 1})

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(result.Items))
	assert.Equal(t, 5, result.TotalItems)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, reimbursement.PageSize, result.PageSize)
}

func TestProject_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	all := sampleRecords()

	t.Run("matches code", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Busca: "r003", Page: 1})
		assert.Equal(t, []string{"3"}, ids(result.Items))
	})

	t.Run("matches requester name", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Busca: "maria", Page: 1})
		assert.Equal(t, []string{"1", "3"}, ids(result.Items))
	})

	t.Run("matches category", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Busca: "combustível", Page: 1})
		assert.Equal(t, []string{"1", "4"}, ids(result.Items))
	})

	t.Run("matches description", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Busca: "aeroporto", Page: 1})
		assert.Equal(t, []string{"3"}, ids(result.Items))
	})

	t.Run("no match yields empty page", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Busca: "inexistente", Page: 1})
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.TotalItems)
		assert.Equal(t, 0, result.TotalPages)
		assert.Equal(t, 1, result.Page)
	})
}

func TestProject_TabFiltersByStatus(t *testing.T) {
	all := sampleRecords()

	result := reimbursement.Project(all, reimbursement.Query{Tab: reimbursement.StatusPending, Page: 1})

	assert.Equal(t, []string{"1", "4"}, ids(result.Items))
}

func TestProject_FiltersAreANDed(t *testing.T) {
	all := sampleRecords()

	result := reimbursement.Project(all, reimbursement.Query{
		Busca: "visita",
		Filters: reimbursement.Filters{
			NomeFuncionario: "ana",
			Categoria:       "Combustível",
			Status:          reimbursement.StatusPending,
		},
		Page: 1,
	})

	assert.Equal(t, []string{"4"}, ids(result.Items))

	// tightening any predicate removes the match
	result = reimbursement.Project(all, reimbursement.Query{
		Busca: "visita",
		Filters: reimbursement.Filters{
			NomeFuncionario: "ana",
			Categoria:       "Transporte",
		},
		Page: 1,
	})
	assert.Empty(t, result.Items)
}

func TestProject_Pagination(t *testing.T) {
	var all []reimbursement.ReimbursementResponse
	for i := 1; i <= 25; i++ {
		all = append(all, reimbursement.ReimbursementResponse{
			ID:     fmt.Sprintf("%d", i),
			Codigo: fmt.Sprintf("R%03d", i),
			Status: reimbursement.StatusPending,
		})
	}

	t.Run("fixed page size", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Page: 1})
		assert.Len(t, result.Items, 10)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, 25, result.TotalItems)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Page: 3})
		assert.Len(t, result.Items, 5)
		assert.Equal(t, "21", result.Items[0].ID)
	})

	t.Run("page below range clamps to first", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Page: 0})
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, "1", result.Items[0].ID)

		result = reimbursement.Project(all, reimbursement.Query{Page: -7})
		assert.Equal(t, 1, result.Page)
	})

	t.Run("page above range clamps to last", func(t *testing.T) {
		result := reimbursement.Project(all, reimbursement.Query{Page: 99})
		assert.Equal(t, 3, result.Page)
		assert.Len(t, result.Items, 5)
	})
}

func TestProject_IsPureAndIdempotent(t *testing.T) {
	all := sampleRecords()
	q := reimbursement.Query{Busca: "maria", Tab: reimbursement.StatusPending, Page: 1}

	first := reimbursement.Project(all, q)
	second := reimbursement.Project(all, q)

	assert.Equal(t, first, second)
	// input slice untouched
	assert.Equal(t, "1", all[0].ID)
	assert.Len(t, all, 5)
}
