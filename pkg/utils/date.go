package utils

import (
	"fmt"
	"time"
)

// Layouts aceitos para as datas das planilhas de vendas
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

func ParseDate(dateStr string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return &date, nil
		}
	}

	return nil, fmt.Errorf("data inválida: %q", dateStr)
}
