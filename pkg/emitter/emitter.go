// Package emitter writes the generated job definitions.
package emitter

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	mimeJSON = "application/json"
	mimeYAML = "application/x-yaml"
	dirPerm  = 0o755
	filePerm = 0o644
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options describes where and how jobs are written.
type Options struct {
	Dir        string
	Format     string
	Upload     bool
	BlobPrefix string
}

type encoder struct {
	ext      string
	mimeType string
	marshal  func(v interface{}) ([]byte, error)
}

type emitter struct {
	opts        Options
	encoder     encoder
	azureClient core.AzureBlob
	logger      lumber.Logger
}

// New returns a JobEmitter writing jobs to opts.Dir and, if opts.Upload is set, to the
// azure jobs container.
func New(opts Options, azureClient core.AzureBlob, logger lumber.Logger) (core.JobEmitter, error) {
	var enc encoder
	switch opts.Format {
	case constants.OutputFormatJSON:
		enc = encoder{ext: ".json", mimeType: mimeJSON, marshal: func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}}
	case constants.OutputFormatYAML:
		enc = encoder{ext: ".yaml", mimeType: mimeYAML, marshal: yaml.Marshal}
	default:
		return nil, errs.ErrUnknownOutputFormat
	}
	if opts.Upload && azureClient == nil {
		return nil, errs.ErrAzureConfig
	}
	return &emitter{opts: opts, encoder: enc, azureClient: azureClient, logger: logger}, nil
}

type document struct {
	name     string
	mimeType string
	data     []byte
}

func (e *emitter) Emit(ctx context.Context, jobs []*core.Job) error {
	docs := make([]document, 0, len(jobs)+1)
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		data, err := e.encoder.marshal(job)
		if err != nil {
			e.logger.Errorf("failed to encode job %s, error: %v", job.ID, err)
			return errors.Wrapf(err, "failed to encode job %s", job.ID)
		}
		docs = append(docs, document{name: job.ID + e.encoder.ext, mimeType: e.encoder.mimeType, data: data})
		ids = append(ids, job.ID)
	}
	index, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode job index")
	}
	docs = append(docs, document{name: constants.JobIndexFileName, mimeType: mimeJSON, data: index})

	if err := e.write(docs); err != nil {
		return err
	}
	if e.opts.Upload {
		return e.upload(ctx, docs)
	}
	return nil
}

func (e *emitter) write(docs []document) error {
	if err := os.MkdirAll(e.opts.Dir, dirPerm); err != nil {
		e.logger.Errorf("failed to create output directory %s, error: %v", e.opts.Dir, err)
		return errors.Wrapf(err, "failed to create %s", e.opts.Dir)
	}
	for _, doc := range docs {
		file := filepath.Join(e.opts.Dir, doc.name)
		if err := os.WriteFile(file, doc.data, filePerm); err != nil {
			e.logger.Errorf("failed to write %s, error: %v", file, err)
			return errors.Wrapf(err, "failed to write %s", file)
		}
	}
	e.logger.Infof("wrote %d job definitions to %s", len(docs)-1, e.opts.Dir)
	return nil
}

func (e *emitter) upload(ctx context.Context, docs []document) error {
	g, errCtx := errgroup.WithContext(ctx)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			blobPath := path.Join(e.opts.BlobPrefix, doc.name)
			if _, err := e.azureClient.UploadBytes(errCtx, blobPath, doc.data, core.JobsContainer, doc.mimeType); err != nil {
				e.logger.Errorf("failed to upload %s, error: %v", blobPath, err)
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	e.logger.Infof("uploaded %d job definitions to %s", len(docs)-1, e.opts.BlobPrefix)
	return nil
}
