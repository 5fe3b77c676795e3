package main

import (
	"context"
	"fmt"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rakib-hossain32/doha-popular/internal/bootstrap"
	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace every project with the built-in portfolio",
	Long: `Deletes all documents in the projects collection and inserts the built-in
portfolio. Other collections are not touched.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	inj := bootstrap.BuildContainer()
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	store, err := do.Invoke[docstore.Store](inj)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()

	n, err := do.MustInvoke[service.SeedService](inj).ReseedProjects(cmd.Context())
	if err != nil {
		return err
	}
	log.Info("projects seeded", zap.Int("inserted", n))
	fmt.Printf("Seeded %d projects\n", n)
	return nil
}
