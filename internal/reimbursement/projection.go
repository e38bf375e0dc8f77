package reimbursement

import "strings"

// PageSize is the fixed page length of the reimbursement list view.
const PageSize = 10

type Filters struct {
	NomeFuncionario string
	Categoria       string
	Status          string
}

type Query struct {
	Busca   string
	Tab     string
	Filters Filters
	Page    int
}

type Projection struct {
	Items      []ReimbursementResponse
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Project applies search, tab and filter predicates over the full record set
// and returns the requested page. All predicates are ANDed. The input order
// is preserved; Project never reorders. The page number clamps to the valid
// range instead of erroring.
func Project(all []ReimbursementResponse, q Query) Projection {
	filtered := make([]ReimbursementResponse, 0, len(all))
	for _, r := range all {
		if matches(r, q) {
			filtered = append(filtered, r)
		}
	}

	totalItems := len(filtered)
	totalPages := (totalItems + PageSize - 1) / PageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Projection{
		Items:      filtered[start:end],
		Page:       page,
		PageSize:   PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func matches(r ReimbursementResponse, q Query) bool {
	if q.Busca != "" && !matchesSearch(r, q.Busca) {
		return false
	}
	if q.Tab != "" && r.Status != q.Tab {
		return false
	}
	if q.Filters.NomeFuncionario != "" &&
		!containsFold(r.NomeFuncionario, q.Filters.NomeFuncionario) {
		return false
	}
	if q.Filters.Categoria != "" && r.Categoria != q.Filters.Categoria {
		return false
	}
	if q.Filters.Status != "" && r.Status != q.Filters.Status {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match over the fields the
// dashboard search box covers: code, requester name, category, description.
func matchesSearch(r ReimbursementResponse, term string) bool {
	return containsFold(r.Codigo, term) ||
		containsFold(r.NomeFuncionario, term) ||
		containsFold(r.Categoria, term) ||
		containsFold(r.Descricao, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
