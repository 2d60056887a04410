// Package cimodel reads and validates the CI model describing stages, coverages and subprojects.
package cimodel

import (
	"bytes"
	"os"

	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Loader reads CI models from YAML.
type Loader struct {
	validate *validator.Validate
	trans    ut.Translator
	logger   lumber.Logger
}

// New returns a new Loader.
func New(logger lumber.Logger) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		logger.Errorf("failed to configure model validator, error: %v", err)
		return nil, err
	}
	return &Loader{validate: validate, trans: trans, logger: logger}, nil
}

// Load reads the model from the file at path.
func (l *Loader) Load(path string) (*core.CIModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Errorf("failed to read CI model %s, error: %v", path, err)
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	model, err := l.Parse(data)
	if err != nil {
		l.logger.Errorf("invalid CI model %s, error: %v", path, err)
		return nil, err
	}
	l.logger.Debugf("loaded CI model %s with %d stages and %d subprojects",
		path, len(model.Stages), len(model.Subprojects))
	return model, nil
}

// Parse decodes and validates a YAML model. Unknown fields are rejected.
func (l *Loader) Parse(data []byte) (*core.CIModel, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	model := new(core.CIModel)
	if err := decoder.Decode(model); err != nil {
		return nil, errors.Wrap(err, "failed to decode CI model")
	}
	if err := l.validate.Struct(model); err != nil {
		return nil, errs.ValidationErr(err, l.trans)
	}
	return model, nil
}
