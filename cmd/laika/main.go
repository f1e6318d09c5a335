// laika es el cliente de línea de comandos del alta y el inicio de sesión:
// registro y confirmación en Cognito, login con carga de perfil y alta del perfil
// (Users + Vets/Shelters) tras el primer login.
//
// Uso: laika <comando> [flags]. La sesión se guarda en ~/.laika/session.json.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/bootstrap"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/session"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/apiclient"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/awscfg"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/cognito"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/dynamo"
	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

const usage = `Uso: laika <comando> [flags]

Comandos:
  register          crea la cuenta y envía el código de verificación
  confirm           confirma la cuenta con el código
  resend            reenvía el código de verificación
  login             inicia sesión y carga el perfil
  complete-profile  crea el perfil tras el primer login
  whoami            muestra el usuario de la sesión activa
  logout            cierra la sesión

Usa "laika <comando> -h" para ver los flags de cada comando.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	// Por defecto solo avisos: la salida útil del comando va a stdout.
	level := cfg.App.LogLevel
	if os.Getenv("LOG_LEVEL") == "" {
		level = "warn"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Inicializar: %v\n", err)
		os.Exit(1)
	}
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// newApp arma el cliente: Cognito con sesión en disco, lecturas por la API HTTP y
// escrituras de onboarding directo a DynamoDB.
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	if cfg.Cognito.ClientID == "" {
		return nil, errors.New("COGNITO_CLIENT_ID requerido")
	}
	awsCfg, err := awscfg.Load(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	path, err := cognito.DefaultSessionPath()
	if err != nil {
		return nil, fmt.Errorf("ruta de sesión: %w", err)
	}

	identity := cognito.NewFromConfig(awsCfg, cfg.Cognito.ClientID, log, cognito.WithSessionCache(cognito.FileCache{Path: path}))
	reads := apiclient.New(cfg.API.Endpoint, identity, log)
	writes := dynamo.NewProfileStore(dynamo.NewClient(awsCfg, cfg.AWS.Endpoint), cfg.Tables, log, nil)

	return &app{
		workflow: bootstrap.NewWorkflow(identity, reads, writes, log),
		tokens:   identity,
		session:  session.NewStore(),
		out:      os.Stdout,
	}, nil
}

// exitCode 3 para errores de sesión/credenciales, 1 para el resto.
func exitCode(err error) int {
	if domain.IsAuthentication(err) {
		return 3
	}
	return 1
}
