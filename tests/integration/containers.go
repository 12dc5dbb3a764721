package integration

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// InitDockerCompose starts the pgvector and Vault dependencies declared in docker-compose.deps.yml.
type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		).WithOccurrence(2)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// initEnvVars exports configuration for the application under test.
type initEnvVars struct {
	envVars map[string]string
}

func (i initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// initVaultSecret writes the database credentials the application reads through its Vault provider.
type initVaultSecret struct {
	addr, token, mountPath, secretPath string
	data                               map[string]any
}

func (i initVaultSecret) Initialize(ctx context.Context) (context.Context, error) {
	cfg := api.DefaultConfig()
	cfg.Address = i.addr

	client, err := api.NewClient(cfg)
	if err != nil {
		return ctx, err
	}
	client.SetToken(i.token)

	_, err = client.KVv2(i.mountPath).Put(ctx, i.secretPath, i.data)
	return ctx, err
}
