// Package planilha lê as planilhas CSV aceitas pela API: o cadastro de
// vendedores e o relatório de vendas usado pelo cálculo de comissão e pela
// agregação de volume.
package planilha

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/pkg/utils"
)

// Colunas obrigatórias do cadastro de vendedores
var ColunasVendedores = []string{"nome", "cpf", "data_nascimento", "email", "estado"}

// Colunas obrigatórias do relatório de vendas
var ColunasVendas = []string{
	"Data da Venda",
	"Valor da Venda",
	"Custo da Venda",
	"Canal de Venda",
	"Nome do Vendedor",
}

// LerVendedores interpreta a planilha de cadastro de vendedores, na ordem do
// arquivo. Nenhuma validação de CPF ou email é feita aqui.
func LerVendedores(r io.Reader) ([]*domain.Vendedor, error) {
	indice, registros, err := lerRegistros(r, ColunasVendedores)
	if err != nil {
		return nil, err
	}

	vendedores := make([]*domain.Vendedor, 0, len(registros))
	for _, registro := range registros {
		vendedores = append(vendedores, &domain.Vendedor{
			Nome:           registro[indice["nome"]],
			CPF:            registro[indice["cpf"]],
			DataNascimento: registro[indice["data_nascimento"]],
			Email:          registro[indice["email"]],
			Estado:         registro[indice["estado"]],
		})
	}

	return vendedores, nil
}

// LerVendas interpreta o relatório de vendas, normalizando datas e valores
// monetários no formato brasileiro ("R$ 1.234,56")
func LerVendas(r io.Reader) ([]*domain.Venda, error) {
	indice, registros, err := lerRegistros(r, ColunasVendas)
	if err != nil {
		return nil, err
	}

	vendas := make([]*domain.Venda, 0, len(registros))
	for i, registro := range registros {
		// +2: uma linha de cabeçalho e linhas contadas a partir de 1
		linha := i + 2

		data, err := utils.ParseDate(registro[indice["Data da Venda"]])
		if err != nil {
			return nil, &ErroFormato{
				Linha: linha,
				Campo: "Data da Venda",
				Valor: registro[indice["Data da Venda"]],
				Err:   err,
			}
		}

		valor, err := utils.ParseValorReal(registro[indice["Valor da Venda"]])
		if err != nil {
			return nil, &ErroFormato{
				Linha: linha,
				Campo: "Valor da Venda",
				Valor: registro[indice["Valor da Venda"]],
				Err:   err,
			}
		}

		custo, err := utils.ParseValorReal(registro[indice["Custo da Venda"]])
		if err != nil {
			return nil, &ErroFormato{
				Linha: linha,
				Campo: "Custo da Venda",
				Valor: registro[indice["Custo da Venda"]],
				Err:   err,
			}
		}

		vendas = append(vendas, &domain.Venda{
			Data:         *data,
			Valor:        valor,
			Custo:        custo,
			Canal:        registro[indice["Canal de Venda"]],
			NomeVendedor: registro[indice["Nome do Vendedor"]],
		})
	}

	return vendas, nil
}

// lerRegistros lê o CSV inteiro, confere as colunas obrigatórias e devolve o
// índice de cada coluna no cabeçalho junto com as linhas de dados
func lerRegistros(r io.Reader, obrigatorias []string) (map[string]int, [][]string, error) {
	leitor := csv.NewReader(r)
	leitor.TrimLeadingSpace = true

	linhas, err := leitor.ReadAll()
	if err != nil {
		return nil, nil, ErrArquivoIlegivel
	}

	indice := make(map[string]int)
	if len(linhas) > 0 {
		for i, coluna := range linhas[0] {
			indice[strings.TrimSpace(coluna)] = i
		}
	}

	var ausentes []string
	for _, coluna := range obrigatorias {
		if _, ok := indice[coluna]; !ok {
			ausentes = append(ausentes, coluna)
		}
	}
	if len(ausentes) > 0 {
		return nil, nil, &ErroColunasAusentes{Colunas: ausentes}
	}

	return indice, linhas[1:], nil
}
