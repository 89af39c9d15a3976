package handler

import (
	"net/http"

	"github.com/aawz/vendedores-api/internal/api/handler/router"
	"github.com/aawz/vendedores-api/internal/usecases/comissao"
	"github.com/aawz/vendedores-api/internal/usecases/importacao"
	"github.com/aawz/vendedores-api/internal/usecases/vendas"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Vendedores(service vendedor.VendedorService) []router.Route {
	return []router.Route{
		{
			Path:    "/vendedores",
			Method:  http.MethodPost,
			Handler: CriarVendedor(service),
		},
		{
			Path:    "/vendedores",
			Method:  http.MethodGet,
			Handler: ListarVendedores(service),
		},
		{
			Path:    "/vendedores/:id",
			Method:  http.MethodGet,
			Handler: BuscarVendedor(service),
		},
		{
			Path:    "/vendedores/:id",
			Method:  http.MethodPut,
			Handler: AtualizarVendedor(service),
		},
		{
			Path:    "/vendedores/:id",
			Method:  http.MethodDelete,
			Handler: RemoverVendedor(service),
		},
	}
}

func Importacao(service importacao.ImportacaoService) []router.Route {
	return []router.Route{
		{
			Path:    "/importar-vendedores",
			Method:  http.MethodGet,
			Handler: FormularioImportacao(),
		},
		{
			Path:    "/importar-vendedores",
			Method:  http.MethodPost,
			Handler: ImportarVendedores(service),
		},
	}
}

func Comissao(service comissao.ComissaoService) []router.Route {
	return []router.Route{
		{
			Path:    "/calcula-comissao",
			Method:  http.MethodPost,
			Handler: CalcularComissao(service),
		},
	}
}

func Volume(service vendas.VolumeService) []router.Route {
	return []router.Route{
		{
			Path:    "/volume-vendas",
			Method:  http.MethodPost,
			Handler: VolumeVendas(service),
		},
		{
			Path:    "/volume-vendas",
			Method:  http.MethodGet,
			Handler: VolumePorCanal(service),
		},
	}
}
