package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LambdaTest/bucketeer/config"
	"github.com/LambdaTest/bucketeer/pkg/azure"
	"github.com/LambdaTest/bucketeer/pkg/bucketprovider"
	"github.com/LambdaTest/bucketeer/pkg/cimodel"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/LambdaTest/bucketeer/pkg/emitter"
	"github.com/LambdaTest/bucketeer/pkg/history"
	"github.com/LambdaTest/bucketeer/pkg/jobbuilder"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func planCommand() *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Split every coverage of the CI model into buckets and write their jobs",
		Args:  cobra.NoArgs,
		RunE:  runPlan,
	}
	attachPlanFlags(planCmd)
	return planCmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	// create a context that is cancelled on interrupt
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var azureClient core.AzureBlob
	if cfg.History.Source == constants.HistorySourceAzure || cfg.Output.Upload {
		azureClient, err = azure.NewAzureBlobEnv(cfg, logger)
		if err != nil {
			logger.Errorf("failed to create azure blob client, error: %v", err)
			return err
		}
	}
	historyStore, err := history.New(&cfg.History, azureClient, logger)
	if err != nil {
		logger.Errorf("failed to create history store, error: %v", err)
		return err
	}
	jobEmitter, err := emitter.New(emitter.Options{
		Dir:        cfg.Output.Dir,
		Format:     cfg.Output.Format,
		Upload:     cfg.Output.Upload,
		BlobPrefix: cfg.Output.BlobPrefix,
	}, azureClient, logger)
	if err != nil {
		logger.Errorf("failed to create job emitter, error: %v", err)
		return err
	}

	model, classTimes, err := loadInputs(ctx, cfg, historyStore, logger)
	if err != nil {
		return err
	}

	jobBuilder := jobbuilder.New(model, logger)
	provider, err := bucketprovider.New(model, classTimes, bucketprovider.Options{
		BucketNumber:            cfg.Split.BucketNumber,
		MaxSubprojectsPerBucket: cfg.Split.MaxSubprojectsPerBucket,
		VersionMatrixSize:       cfg.Split.VersionMatrixSize,
	}, jobBuilder, logger)
	if err != nil {
		logger.Errorf("failed to split the CI model, error: %v", err)
		return err
	}
	jobs, err := jobBuilder.CreateModelJobs(provider)
	if err != nil {
		return err
	}
	if err := jobEmitter.Emit(ctx, jobs); err != nil {
		logger.Errorf("failed to emit jobs, error: %v", err)
		return err
	}
	return printPlanSummary(cmd.OutOrStdout(), model, provider, len(jobs))
}

// loadInputs reads the CI model and the test class timings in parallel
func loadInputs(ctx context.Context, cfg *config.Config, historyStore core.HistoryStore,
	logger lumber.Logger) (*core.CIModel, core.BuildProjectClassTimes, error) {
	loader, err := cimodel.New(logger)
	if err != nil {
		return nil, nil, err
	}
	var model *core.CIModel
	var classTimes core.BuildProjectClassTimes
	g, errCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var loadErr error
		model, loadErr = loader.Load(cfg.Model)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		classTimes, loadErr = historyStore.Load(errCtx)
		return loadErr
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	logger.Infof("loaded test class times of %d build projects", len(classTimes))
	return model, classTimes, nil
}
