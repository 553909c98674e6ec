package profiles

import (
	"context"
)

// Upserts key on user_id: a persona re-submitting the form updates the
// existing registration. Profile row is created alongside on first
// registration.

func (r *Repo) UpsertCigano(ctx context.Context, reg CiganoRegistration) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO cigano_registrations(user_id, nome_razao_social, cnpj_cpf, inscricao_estadual,
			email, telefone_whatsapp, endereco_completo, tempo_atuacao,
			estimativa_producao_mensal, link_instagram, link_untappd, logo_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (user_id) DO UPDATE SET
			nome_razao_social=EXCLUDED.nome_razao_social, cnpj_cpf=EXCLUDED.cnpj_cpf,
			inscricao_estadual=EXCLUDED.inscricao_estadual, email=EXCLUDED.email,
			telefone_whatsapp=EXCLUDED.telefone_whatsapp, endereco_completo=EXCLUDED.endereco_completo,
			tempo_atuacao=EXCLUDED.tempo_atuacao,
			estimativa_producao_mensal=EXCLUDED.estimativa_producao_mensal,
			link_instagram=EXCLUDED.link_instagram, link_untappd=EXCLUDED.link_untappd,
			logo_url=EXCLUDED.logo_url, updated_at=now()`,
		reg.UserID, reg.NomeRazaoSocial, reg.CNPJCPF, reg.InscricaoEstadual,
		reg.Email, reg.TelefoneWhatsapp, reg.EnderecoCompleto, reg.TempoAtuacao,
		reg.EstimativaProducaoMensal, reg.LinkInstagram, reg.LinkUntappd, reg.LogoURL)
	return err
}

func (r *Repo) GetCigano(ctx context.Context, userID string) (CiganoRegistration, error) {
	var reg CiganoRegistration
	err := r.DB.QueryRow(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj_cpf, COALESCE(inscricao_estadual,''),
		       email, telefone_whatsapp, endereco_completo, tempo_atuacao,
		       estimativa_producao_mensal, COALESCE(link_instagram,''), COALESCE(link_untappd,''),
		       COALESCE(logo_url,''), created_at, updated_at
		FROM cigano_registrations WHERE user_id=$1`, userID).Scan(
		&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJCPF, &reg.InscricaoEstadual,
		&reg.Email, &reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao,
		&reg.EstimativaProducaoMensal, &reg.LinkInstagram, &reg.LinkUntappd,
		&reg.LogoURL, &reg.CreatedAt, &reg.UpdatedAt)
	return reg, wrapNoRows(err)
}

func (r *Repo) ListCiganos(ctx context.Context) ([]CiganoRegistration, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj_cpf, COALESCE(inscricao_estadual,''),
		       email, telefone_whatsapp, endereco_completo, tempo_atuacao,
		       estimativa_producao_mensal, COALESCE(link_instagram,''), COALESCE(link_untappd,''),
		       COALESCE(logo_url,''), created_at, updated_at
		FROM cigano_registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CiganoRegistration
	for rows.Next() {
		var reg CiganoRegistration
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJCPF, &reg.InscricaoEstadual,
			&reg.Email, &reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao,
			&reg.EstimativaProducaoMensal, &reg.LinkInstagram, &reg.LinkUntappd,
			&reg.LogoURL, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertFabrica(ctx context.Context, reg FabricaRegistration) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO fabrica_registrations(user_id, nome_razao_social, cnpj, inscricao_estadual,
			registro_mapa, email, telefone_whatsapp, endereco_completo, tempo_atuacao,
			capacidade_producao_mensal, link_instagram, logo_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (user_id) DO UPDATE SET
			nome_razao_social=EXCLUDED.nome_razao_social, cnpj=EXCLUDED.cnpj,
			inscricao_estadual=EXCLUDED.inscricao_estadual, registro_mapa=EXCLUDED.registro_mapa,
			email=EXCLUDED.email, telefone_whatsapp=EXCLUDED.telefone_whatsapp,
			endereco_completo=EXCLUDED.endereco_completo, tempo_atuacao=EXCLUDED.tempo_atuacao,
			capacidade_producao_mensal=EXCLUDED.capacidade_producao_mensal,
			link_instagram=EXCLUDED.link_instagram, logo_url=EXCLUDED.logo_url, updated_at=now()`,
		reg.UserID, reg.NomeRazaoSocial, reg.CNPJ, reg.InscricaoEstadual,
		reg.RegistroMapa, reg.Email, reg.TelefoneWhatsapp, reg.EnderecoCompleto, reg.TempoAtuacao,
		reg.CapacidadeProducaoMensal, reg.LinkInstagram, reg.LogoURL)
	return err
}

func (r *Repo) GetFabrica(ctx context.Context, userID string) (FabricaRegistration, error) {
	var reg FabricaRegistration
	err := r.DB.QueryRow(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj, COALESCE(inscricao_estadual,''),
		       registro_mapa, email, telefone_whatsapp, endereco_completo, tempo_atuacao,
		       capacidade_producao_mensal, COALESCE(link_instagram,''), COALESCE(logo_url,''),
		       created_at, updated_at
		FROM fabrica_registrations WHERE user_id=$1`, userID).Scan(
		&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJ, &reg.InscricaoEstadual,
		&reg.RegistroMapa, &reg.Email, &reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao,
		&reg.CapacidadeProducaoMensal, &reg.LinkInstagram, &reg.LogoURL,
		&reg.CreatedAt, &reg.UpdatedAt)
	return reg, wrapNoRows(err)
}

func (r *Repo) ListFabricas(ctx context.Context) ([]FabricaRegistration, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj, COALESCE(inscricao_estadual,''),
		       registro_mapa, email, telefone_whatsapp, endereco_completo, tempo_atuacao,
		       capacidade_producao_mensal, COALESCE(link_instagram,''), COALESCE(logo_url,''),
		       created_at, updated_at
		FROM fabrica_registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FabricaRegistration
	for rows.Next() {
		var reg FabricaRegistration
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJ, &reg.InscricaoEstadual,
			&reg.RegistroMapa, &reg.Email, &reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao,
			&reg.CapacidadeProducaoMensal, &reg.LinkInstagram, &reg.LogoURL,
			&reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertFornecedor(ctx context.Context, reg FornecedorRegistration) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO fornecedor_registrations(user_id, nome_razao_social, cnpj, registro_mapa,
			email, telefone_whatsapp, endereco_completo, tempo_atuacao,
			capacidade_producao_mensal, link_instagram, logo_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (user_id) DO UPDATE SET
			nome_razao_social=EXCLUDED.nome_razao_social, cnpj=EXCLUDED.cnpj,
			registro_mapa=EXCLUDED.registro_mapa, email=EXCLUDED.email,
			telefone_whatsapp=EXCLUDED.telefone_whatsapp, endereco_completo=EXCLUDED.endereco_completo,
			tempo_atuacao=EXCLUDED.tempo_atuacao,
			capacidade_producao_mensal=EXCLUDED.capacidade_producao_mensal,
			link_instagram=EXCLUDED.link_instagram, logo_url=EXCLUDED.logo_url, updated_at=now()`,
		reg.UserID, reg.NomeRazaoSocial, reg.CNPJ, reg.RegistroMapa,
		reg.Email, reg.TelefoneWhatsapp, reg.EnderecoCompleto, reg.TempoAtuacao,
		reg.CapacidadeProducaoMensal, reg.LinkInstagram, reg.LogoURL)
	return err
}

func (r *Repo) GetFornecedor(ctx context.Context, userID string) (FornecedorRegistration, error) {
	var reg FornecedorRegistration
	err := r.DB.QueryRow(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj, registro_mapa,
		       email, telefone_whatsapp, endereco_completo, tempo_atuacao,
		       capacidade_producao_mensal, COALESCE(link_instagram,''), COALESCE(logo_url,''),
		       created_at, updated_at
		FROM fornecedor_registrations WHERE user_id=$1`, userID).Scan(
		&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJ, &reg.RegistroMapa,
		&reg.Email, &reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao,
		&reg.CapacidadeProducaoMensal, &reg.LinkInstagram, &reg.LogoURL,
		&reg.CreatedAt, &reg.UpdatedAt)
	return reg, wrapNoRows(err)
}

func (r *Repo) ListFornecedores(ctx context.Context) ([]FornecedorRegistration, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj, registro_mapa,
		       email, telefone_whatsapp, endereco_completo, tempo_atuacao,
		       capacidade_producao_mensal, COALESCE(link_instagram,''), COALESCE(logo_url,''),
		       created_at, updated_at
		FROM fornecedor_registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FornecedorRegistration
	for rows.Next() {
		var reg FornecedorRegistration
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJ, &reg.RegistroMapa,
			&reg.Email, &reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao,
			&reg.CapacidadeProducaoMensal, &reg.LinkInstagram, &reg.LogoURL,
			&reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertBar(ctx context.Context, reg BarRegistration) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO bar_registrations(user_id, nome_razao_social, cnpj, email,
			telefone_whatsapp, endereco_completo, tempo_atuacao, demanda_media_mensal,
			link_instagram, logo_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (user_id) DO UPDATE SET
			nome_razao_social=EXCLUDED.nome_razao_social, cnpj=EXCLUDED.cnpj,
			email=EXCLUDED.email, telefone_whatsapp=EXCLUDED.telefone_whatsapp,
			endereco_completo=EXCLUDED.endereco_completo, tempo_atuacao=EXCLUDED.tempo_atuacao,
			demanda_media_mensal=EXCLUDED.demanda_media_mensal,
			link_instagram=EXCLUDED.link_instagram, logo_url=EXCLUDED.logo_url, updated_at=now()`,
		reg.UserID, reg.NomeRazaoSocial, reg.CNPJ, reg.Email,
		reg.TelefoneWhatsapp, reg.EnderecoCompleto, reg.TempoAtuacao, reg.DemandaMediaMensal,
		reg.LinkInstagram, reg.LogoURL)
	return err
}

func (r *Repo) GetBar(ctx context.Context, userID string) (BarRegistration, error) {
	var reg BarRegistration
	err := r.DB.QueryRow(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj, email,
		       telefone_whatsapp, endereco_completo, tempo_atuacao, demanda_media_mensal,
		       COALESCE(link_instagram,''), COALESCE(logo_url,''), created_at, updated_at
		FROM bar_registrations WHERE user_id=$1`, userID).Scan(
		&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJ, &reg.Email,
		&reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao, &reg.DemandaMediaMensal,
		&reg.LinkInstagram, &reg.LogoURL, &reg.CreatedAt, &reg.UpdatedAt)
	return reg, wrapNoRows(err)
}

func (r *Repo) ListBars(ctx context.Context) ([]BarRegistration, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, nome_razao_social, cnpj, email,
		       telefone_whatsapp, endereco_completo, tempo_atuacao, demanda_media_mensal,
		       COALESCE(link_instagram,''), COALESCE(logo_url,''), created_at, updated_at
		FROM bar_registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BarRegistration
	for rows.Next() {
		var reg BarRegistration
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.NomeRazaoSocial, &reg.CNPJ, &reg.Email,
			&reg.TelefoneWhatsapp, &reg.EnderecoCompleto, &reg.TempoAtuacao, &reg.DemandaMediaMensal,
			&reg.LinkInstagram, &reg.LogoURL, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}
