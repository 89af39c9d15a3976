package planilha

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArquivoIlegivel indica que o conteúdo não pôde ser lido como CSV
var ErrArquivoIlegivel = errors.New("não foi possível ler o arquivo enviado")

// ErroColunasAusentes indica que a planilha não possui todas as colunas
// obrigatórias
type ErroColunasAusentes struct {
	Colunas []string
}

func (e *ErroColunasAusentes) Error() string {
	return fmt.Sprintf("colunas obrigatórias ausentes: %s", strings.Join(e.Colunas, ", "))
}

// ErroFormato indica um valor de data ou moeda que não pôde ser interpretado
type ErroFormato struct {
	Linha int
	Campo string
	Valor string
	Err   error
}

func (e *ErroFormato) Error() string {
	return fmt.Sprintf("linha %d: campo %q com valor inválido %q", e.Linha, e.Campo, e.Valor)
}

func (e *ErroFormato) Unwrap() error {
	return e.Err
}
