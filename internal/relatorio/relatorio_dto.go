package relatorio

type CreateReportRequest struct {
	Nome           string  `json:"nome" binding:"required"`
	Categoria      string  `json:"categoria" binding:"required"`
	Tipo           string  `json:"tipo" binding:"required"`
	Periodo        string  `json:"periodo" binding:"required"`
	Status         string  `json:"status"`
	Descricao      string  `json:"descricao"`
	Tamanho        string  `json:"tamanho"`
	CaminhoArquivo *string `json:"caminhoArquivo"`
}

type UpdateReportRequest struct {
	Nome           *string `json:"nome"`
	Categoria      *string `json:"categoria"`
	Tipo           *string `json:"tipo"`
	Periodo        *string `json:"periodo"`
	Status         *string `json:"status"`
	Descricao      *string `json:"descricao"`
	Tamanho        *string `json:"tamanho"`
	CaminhoArquivo *string `json:"caminhoArquivo"`
}

// ListQuery carries the filters and pagination of GET /relatorios. Unlike the
// reimbursement list, reports are filtered and paged in the database.
type ListQuery struct {
	Busca     string
	Categoria string
	Tipo      string
	Periodo   string
	Status    string
	Pagina    int
	Limite    int
}

type ReportResponse struct {
	ID                string  `json:"id"`
	Nome              string  `json:"nome"`
	Categoria         string  `json:"categoria"`
	Tipo              string  `json:"tipo"`
	Periodo           string  `json:"periodo"`
	Status            string  `json:"status"`
	Descricao         string  `json:"descricao,omitempty"`
	Tamanho           string  `json:"tamanho,omitempty"`
	CaminhoArquivo    *string `json:"caminhoArquivo,omitempty"`
	UsuarioCriacao    string  `json:"usuarioCriacao"`
	UsuarioEdicao     *string `json:"usuarioEdicao,omitempty"`
	DataCriacao       string  `json:"dataCriacao"`
	UltimaAtualizacao string  `json:"ultimaAtualizacao"`
}
