package client

type CreateClientRequest struct {
	NomeEmpresa string `json:"nomeEmpresa" binding:"required"`
	NomeContato string `json:"nomeContato" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Telefone    string `json:"telefone" binding:"required"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado" binding:"omitempty,len=2"`
	CEP         string `json:"cep"`
	CNPJ        string `json:"cnpj"`
	Status      string `json:"status" binding:"omitempty,oneof=VIP ATIVO INATIVO NOVO"`
	Descricao   string `json:"descricao"`
}

type UpdateClientRequest struct {
	NomeEmpresa *string `json:"nomeEmpresa"`
	NomeContato *string `json:"nomeContato"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Telefone    *string `json:"telefone"`
	Endereco    *string `json:"endereco"`
	Cidade      *string `json:"cidade"`
	Estado      *string `json:"estado" binding:"omitempty,len=2"`
	CEP         *string `json:"cep"`
	CNPJ        *string `json:"cnpj"`
	Status      *string `json:"status" binding:"omitempty,oneof=VIP ATIVO INATIVO NOVO"`
	Descricao   *string `json:"descricao"`
}

type ClientResponse struct {
	ID                string `json:"id"`
	NomeEmpresa       string `json:"nomeEmpresa"`
	NomeContato       string `json:"nomeContato"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	Endereco          string `json:"endereco,omitempty"`
	Cidade            string `json:"cidade,omitempty"`
	Estado            string `json:"estado,omitempty"`
	CEP               string `json:"cep,omitempty"`
	CNPJ              string `json:"cnpj,omitempty"`
	Status            string `json:"status"`
	Descricao         string `json:"descricao,omitempty"`
	DataCriacao       string `json:"dataCriacao"`
	UltimaAtualizacao string `json:"ultimaAtualizacao"`
}
