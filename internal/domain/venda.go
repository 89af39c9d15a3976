package domain

import "time"

// Canais de venda reconhecidos pela agregação de volume
const (
	CanalOnline     = "Online"
	CanalTelefone   = "Telefone"
	CanalLojaFisica = "Loja física"
)

// CanaisDeVenda na ordem de processamento
var CanaisDeVenda = []string{CanalOnline, CanalTelefone, CanalLojaFisica}

// Venda é uma linha da planilha de vendas, já normalizada
type Venda struct {
	Data         time.Time
	Valor        float64
	Custo        float64
	Canal        string
	NomeVendedor string
}

// ResultadoComissao é uma linha do arquivo de comissões gerado
type ResultadoComissao struct {
	NomeVendedor        string
	ComissaoTotal       float64
	ComissaoComDesconto float64
}

// VolumeVendedor é o agregado de vendas de um vendedor em um canal
type VolumeVendedor struct {
	ID           int64   `json:"id"`
	NomeVendedor string  `json:"nome_do_vendedor"`
	VolumeTotal  float64 `json:"volume_total"`
	Media        float64 `json:"media"`
}
