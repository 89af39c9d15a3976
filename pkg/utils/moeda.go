package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValorReal converte um valor monetário no formato brasileiro
// ("R$ 1.234,56") para float64. O prefixo "R$" é opcional.
func ParseValorReal(valor string) (float64, error) {
	normalizado := strings.TrimSpace(valor)
	normalizado = strings.TrimPrefix(normalizado, "R$")
	normalizado = strings.TrimSpace(normalizado)

	// Remove separadores de milhar e troca a vírgula decimal por ponto
	normalizado = strings.ReplaceAll(normalizado, ".", "")
	normalizado = strings.Replace(normalizado, ",", ".", 1)

	if normalizado == "" {
		return 0, fmt.Errorf("valor monetário vazio")
	}

	f, err := strconv.ParseFloat(normalizado, 64)
	if err != nil {
		return 0, fmt.Errorf("valor monetário inválido: %q", valor)
	}

	return f, nil
}
