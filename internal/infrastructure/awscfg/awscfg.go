// Package awscfg carga la configuración compartida del SDK de AWS.
package awscfg

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
)

// Load resuelve credenciales con la cadena por defecto (env, perfil, rol) en la región dada.
func Load(ctx context.Context, c config.AWSConfig) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	return cfg, nil
}
