package spec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/testcase"
)

// GenerateOption configures Generate.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	logger *zap.Logger
}

// WithLogger sets the logger used during generation.
func WithLogger(l *zap.Logger) GenerateOption {
	return func(c *generateConfig) {
		c.logger = l
	}
}

// Generate binds the reference from doc into rt and expands every input
// specification in document order against one shared history.
//
// rt must have been created with a random source when doc has random input
// specifications. Errors are *eval.BindError, *testcase.ReferenceError,
// *testcase.ExhaustedError or an expression error, wrapped with the data line.
func Generate(doc *Document, rt *eval.Runtime, opts ...GenerateOption) (*testcase.Suite, error) {
	cfg := generateConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ref, err := rt.BindCallable(doc.Source, doc.Name)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}

	env := &testcase.Env{
		History:   testcase.NewHistory(),
		Reference: ref,
		Runtime:   rt,
		Logger:    cfg.logger,
	}
	suite := &testcase.Suite{Name: doc.Name, Reference: ref}

	for _, in := range doc.Inputs {
		before := suite.Len()
		for i, c := range in.Cases() {
			tests, err := c.Expand(env)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", in.caseLine(i), err)
			}
			for _, t := range tests {
				t.Secret = in.IsSecret()
				if t.Secret {
					suite.Secret = append(suite.Secret, t)
				} else {
					suite.Public = append(suite.Public, t)
				}
			}
		}
		cfg.logger.Debug("expanded input specification",
			zap.String("kind", describe(in)),
			zap.Int("line", in.Line()),
			zap.Int("tests", suite.Len()-before),
		)
	}

	return suite, nil
}
