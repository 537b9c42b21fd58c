package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"consultanit/cmd/internal/infrastructure/datosgov"
	"consultanit/cmd/internal/infrastructure/rues"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	// EnvVarsPrefix is the SSM Parameter Store path holding production variables.
	EnvVarsPrefix = "/consultanit/prod/"

	DefaultPort   = "7070"
	DefaultRegion = "us-east-2"
)

type Config struct {
	DatosGovURL string
	RuesURL     string
	Port        string
	Region      string
	Production  bool
}

// Load fills the environment from SSM in production, or from a .env file
// otherwise, and reads the configuration from it.
func Load(ctx context.Context) (*Config, error) {
	production := os.Getenv("GO_ENV") == "production"
	region := getenv("AWS_REGION", DefaultRegion)

	if production {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}

		n, err := LoadParameters(ctx, ssm.NewFromConfig(cfg), EnvVarsPrefix)
		if err != nil {
			return nil, fmt.Errorf("unable to load prod environment: %w", err)
		}
		log.Debugf("loaded %d prod environment variables", n)
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	return &Config{
		DatosGovURL: getenv("DATOS_GOV_CO_URL", datosgov.DefaultBaseURL),
		RuesURL:     getenv("RUES_URL", rues.DefaultBaseURL),
		Port:        getenv("PORT", DefaultPort),
		Region:      region,
		Production:  production,
	}, nil
}

// LoadParameters exports every parameter under prefix as an environment
// variable named after the rest of its path. It returns how many were set.
func LoadParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return count, err
		}

		for _, param := range out.Parameters {
			name := aws.ToString(param.Name)
			if len(name) <= len(prefix) {
				continue
			}

			if err = os.Setenv(name[len(prefix):], aws.ToString(param.Value)); err != nil {
				return count, fmt.Errorf("unable to set environment variable: %w", err)
			}
			count++
		}
	}
	return count, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
