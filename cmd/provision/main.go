// provision crea las tablas de DynamoDB de Laika (Users, Pets, Appointments,
// MedicalRecords, Messages, Shelters, Vets) con sus índices secundarios globales.
// Las tablas existentes no se modifican.
//
// Uso: go run ./cmd/provision [-wait 2m] [-dry-run]
// Para DynamoDB local: AWS_ENDPOINT=http://localhost:8000 go run ./cmd/provision
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/awscfg"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/dynamo"
	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

func main() {
	wait := flag.Duration("wait", 2*time.Minute, "espera máxima por tabla hasta ACTIVE (0 = no esperar)")
	dryRun := flag.Bool("dry-run", false, "imprime las definiciones sin crear nada")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("provision")

	defs := dynamo.Schema(cfg.Tables)
	if *dryRun {
		inputs := make([]any, 0, len(defs))
		for _, d := range defs {
			inputs = append(inputs, d.CreateTableInput())
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(inputs); err != nil {
			fmt.Fprintf(os.Stderr, "Codificar definiciones: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	awsCfg, err := awscfg.Load(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de AWS")
	}
	client := dynamo.NewClient(awsCfg, cfg.AWS.Endpoint)

	log.Info().Str("region", cfg.AWS.Region).Int("tables", len(defs)).Msg("creando tablas")
	if err := dynamo.CreateTables(ctx, client, defs, *wait, log); err != nil {
		log.Fatal().Err(err).Msg("crear tablas")
	}
	log.Info().Msg("tablas listas")
}
