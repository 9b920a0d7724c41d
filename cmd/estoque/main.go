package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	appinventory "github.com/jhoicas/estoque-cli/internal/application/inventory"
	"github.com/jhoicas/estoque-cli/internal/application/report"
	"github.com/jhoicas/estoque-cli/internal/domain/inventory"
	"github.com/jhoicas/estoque-cli/internal/domain/repository"
	"github.com/jhoicas/estoque-cli/internal/infrastructure/jsonstore"
	"github.com/jhoicas/estoque-cli/internal/interfaces/cli"
	"github.com/jhoicas/estoque-cli/pkg/config"
	"github.com/jhoicas/estoque-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	var logOut io.Writer
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic("abrir arquivo de log: " + err.Error())
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   logOut,
	}).With("app", cfg.App.Name).With("env", cfg.App.Env)
	log.Info().
		Str("products", cfg.Storage.ProductsPath()).
		Str("movements", cfg.Storage.MovementsPath()).
		Msg("iniciando aplicação")

	ctx := context.Background()
	gateway := jsonstore.NewGateway(afero.NewOsFs(), cfg.Storage.ProductsPath(), cfg.Storage.MovementsPath())

	view := cli.NewPresenter(os.Stdout, cfg.Console.Color)
	snap, notices, err := gateway.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("carregar dados")
	}
	for _, n := range notices {
		log.Warn().Str("document", n.Document).Str("path", n.Path).Str("kind", n.Kind).AnErr("cause", n.Err).Msg("documento substituído por vazio")
		view.Warning("%s", noticeMessage(n))
	}

	store := inventory.NewStore(snap)
	view.Info("Estoque carregado: %d produto(s), %d movimentação(ões).", store.Len(), len(store.Movements()))

	menu := cli.NewMenu(cli.MenuDeps{
		Inventory: appinventory.NewUseCase(store, gateway),
		Reports:   report.NewUseCase(store),
		In:        os.Stdin,
		Out:       os.Stdout,
		Color:     cfg.Console.Color,
		Log:       log,
	})
	if err := menu.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("execução interrompida")
	}
	log.Info().Msg("aplicação encerrada")
}

func noticeMessage(n repository.LoadNotice) string {
	switch {
	case n.Document == repository.DocumentProducts && n.Kind == repository.NoticeMissing:
		return "Arquivo '" + n.Path + "' não encontrado. Criando novo estoque..."
	case n.Document == repository.DocumentProducts:
		return "Erro: O arquivo '" + n.Path + "' está corrompido. Criando novo estoque..."
	case n.Kind == repository.NoticeMissing:
		return "Arquivo '" + n.Path + "' não encontrado. Criando nova lista de movimentações..."
	default:
		return "Erro: O arquivo '" + n.Path + "' está corrompido. Criando nova lista de movimentações..."
	}
}
