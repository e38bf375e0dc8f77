package user

type CreateUserRequest struct {
	Nome         string `json:"nome" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Telefone     string `json:"telefone"`
	Departamento string `json:"departamento"`
	Cargo        string `json:"cargo"`
	Role         string `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
	Status       string `json:"status" binding:"omitempty,oneof=ATIVO INATIVO"`
	Descricao    string `json:"descricao"`
	Senha        string `json:"senha" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Nome         *string `json:"nome"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Telefone     *string `json:"telefone"`
	Departamento *string `json:"departamento"`
	Cargo        *string `json:"cargo"`
	Role         *string `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
	Status       *string `json:"status" binding:"omitempty,oneof=ATIVO INATIVO"`
	Descricao    *string `json:"descricao"`
}

type UserResponse struct {
	ID                string `json:"id"`
	Nome              string `json:"nome"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone,omitempty"`
	Departamento      string `json:"departamento,omitempty"`
	Cargo             string `json:"cargo,omitempty"`
	Role              string `json:"role"`
	Status            string `json:"status"`
	Descricao         string `json:"descricao,omitempty"`
	DataCriacao       string `json:"dataCriacao"`
	UltimaAtualizacao string `json:"ultimaAtualizacao"`
}
