package profiles

import "time"

// One registration table per persona. Column names follow the intake
// forms (Brazilian fiscal fields), so the structs keep them too.

type CiganoRegistration struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"user_id"`
	NomeRazaoSocial          string    `json:"nome_razao_social"`
	CNPJCPF                  string    `json:"cnpj_cpf"`
	InscricaoEstadual        string    `json:"inscricao_estadual,omitempty"`
	Email                    string    `json:"email"`
	TelefoneWhatsapp         string    `json:"telefone_whatsapp"`
	EnderecoCompleto         string    `json:"endereco_completo"`
	TempoAtuacao             string    `json:"tempo_atuacao"`
	EstimativaProducaoMensal string    `json:"estimativa_producao_mensal"`
	LinkInstagram            string    `json:"link_instagram,omitempty"`
	LinkUntappd              string    `json:"link_untappd,omitempty"`
	LogoURL                  string    `json:"logo_url,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type FabricaRegistration struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"user_id"`
	NomeRazaoSocial          string    `json:"nome_razao_social"`
	CNPJ                     string    `json:"cnpj"`
	InscricaoEstadual        string    `json:"inscricao_estadual,omitempty"`
	RegistroMapa             string    `json:"registro_mapa"`
	Email                    string    `json:"email"`
	TelefoneWhatsapp         string    `json:"telefone_whatsapp"`
	EnderecoCompleto         string    `json:"endereco_completo"`
	TempoAtuacao             string    `json:"tempo_atuacao"`
	CapacidadeProducaoMensal string    `json:"capacidade_producao_mensal"`
	LinkInstagram            string    `json:"link_instagram,omitempty"`
	LogoURL                  string    `json:"logo_url,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type FornecedorRegistration struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"user_id"`
	NomeRazaoSocial          string    `json:"nome_razao_social"`
	CNPJ                     string    `json:"cnpj"`
	RegistroMapa             string    `json:"registro_mapa"`
	Email                    string    `json:"email"`
	TelefoneWhatsapp         string    `json:"telefone_whatsapp"`
	EnderecoCompleto         string    `json:"endereco_completo"`
	TempoAtuacao             string    `json:"tempo_atuacao"`
	CapacidadeProducaoMensal string    `json:"capacidade_producao_mensal"`
	LinkInstagram            string    `json:"link_instagram,omitempty"`
	LogoURL                  string    `json:"logo_url,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type BarRegistration struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	NomeRazaoSocial    string    `json:"nome_razao_social"`
	CNPJ               string    `json:"cnpj"`
	Email              string    `json:"email"`
	TelefoneWhatsapp   string    `json:"telefone_whatsapp"`
	EnderecoCompleto   string    `json:"endereco_completo"`
	TempoAtuacao       string    `json:"tempo_atuacao"`
	DemandaMediaMensal string    `json:"demanda_media_mensal"`
	LinkInstagram      string    `json:"link_instagram,omitempty"`
	LogoURL            string    `json:"logo_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
