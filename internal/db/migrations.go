package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Table and column names match the files written by earlier releases of the
// desktop application so existing stores keep working.
var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS Clientes (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		Nome TEXT NOT NULL,
		Endereco TEXT,
		Numero TEXT,
		Bairro TEXT,
		Cidade TEXT,
		Telefone TEXT,
		RG TEXT,
		CPF TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS Notas (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		NumeroNota TEXT NOT NULL,
		ClienteId INTEGER,
		ClienteNome TEXT,
		ClienteEndereco TEXT,
		ClienteNumero TEXT,
		ClienteBairro TEXT,
		ClienteCidade TEXT,
		ClienteTelefone TEXT,
		ClienteRG TEXT,
		ClienteCPF TEXT,
		DataEvento TEXT,
		DataProva TEXT,
		DataRetirar TEXT,
		DataDevolucao TEXT,
		DescricaoProdutos TEXT,
		Valor REAL,
		Sinal REAL,
		Restante REAL,
		Gravata INTEGER,
		Sapato INTEGER,
		Clutch INTEGER,
		Estola INTEGER,
		Camisa INTEGER,
		Colete INTEGER,
		DataContagem TEXT,
		Atendente TEXT,
		Locatario TEXT,
		DataCriacao TEXT
	);`,
}

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS Clientes (
		Id BIGSERIAL PRIMARY KEY,
		Nome TEXT NOT NULL,
		Endereco TEXT,
		Numero TEXT,
		Bairro TEXT,
		Cidade TEXT,
		Telefone TEXT,
		RG TEXT,
		CPF TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS Notas (
		Id BIGSERIAL PRIMARY KEY,
		NumeroNota TEXT NOT NULL,
		ClienteId BIGINT,
		ClienteNome TEXT,
		ClienteEndereco TEXT,
		ClienteNumero TEXT,
		ClienteBairro TEXT,
		ClienteCidade TEXT,
		ClienteTelefone TEXT,
		ClienteRG TEXT,
		ClienteCPF TEXT,
		DataEvento TEXT,
		DataProva TEXT,
		DataRetirar TEXT,
		DataDevolucao TEXT,
		DescricaoProdutos TEXT,
		Valor NUMERIC(12,2),
		Sinal NUMERIC(12,2),
		Restante NUMERIC(12,2),
		Gravata INTEGER,
		Sapato INTEGER,
		Clutch INTEGER,
		Estola INTEGER,
		Camisa INTEGER,
		Colete INTEGER,
		DataContagem TEXT,
		Atendente TEXT,
		Locatario TEXT,
		DataCriacao TEXT
	);`,
}

// Migrate creates the Clientes and Notas tables when they do not exist yet.
// Running it against an existing store is a no-op.
func Migrate(db *gorm.DB) error {
	statements := sqliteStatements
	if db.Dialector.Name() == "postgres" {
		statements = postgresStatements
	}
	for i, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
