package harness

import (
	"go.uber.org/zap"

	"github.com/roach88/fnjudge/internal/engine"
	"github.com/roach88/fnjudge/internal/testcase"
)

// SessionOptions configures a Session. Zero values select defaults.
type SessionOptions struct {
	Engine *engine.Engine
	IDs    RunIDGenerator
	Logger *zap.Logger
}

// Session grades candidates. It holds no per-run state.
type Session struct {
	engine *engine.Engine
	ids    RunIDGenerator
	logger *zap.Logger
}

// NewSession creates a grading session.
func NewSession(opts SessionOptions) *Session {
	s := &Session{engine: opts.Engine, ids: opts.IDs, logger: opts.Logger}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.engine == nil {
		s.engine = engine.New(engine.Options{Logger: s.logger})
	}
	if s.ids == nil {
		s.ids = UUIDv7Generator{}
	}
	return s
}

// Grade runs suite against candidate.
//
// Public tests run in order until the first failure. Secret tests run only
// when every public test passed, and then all of them run.
func (s *Session) Grade(suite *testcase.Suite, candidate testcase.Invoker) *Result {
	res := &Result{
		RunID:       s.ids.Generate(),
		Function:    suite.Name,
		PublicTotal: len(suite.Public),
		Public:      []Entry{},
		Secret:      SecretSummary{Total: len(suite.Secret)},
	}
	log := s.logger.With(zap.String("run_id", res.RunID), zap.String("function", suite.Name))

	for i, t := range suite.Public {
		o := s.engine.Run(t, candidate)
		res.Public = append(res.Public, Entry{
			Index:       i + 1,
			Inputs:      t.Inputs,
			Expected:    t.Expected,
			Output:      o.Output,
			Outcome:     o.Kind,
			Pass:        o.Pass,
			Hint:        o.Hint,
			Fingerprint: t.Fingerprint(),
		})
		log.Debug("public test",
			zap.Int("index", i+1),
			zap.String("outcome", string(o.Kind)),
		)
		if !o.Pass {
			log.Info("public test failed", zap.Int("index", i+1))
			return res
		}
	}

	res.Secret.Attempted = true
	for _, t := range suite.Secret {
		o := s.engine.Run(t, candidate)
		if o.Pass {
			res.Secret.Passed++
			continue
		}
		res.Secret.Failed++
		res.Secret.Failing = append(res.Secret.Failing, t.Fingerprint())
	}
	log.Debug("secret tests",
		zap.Int("total", res.Secret.Total),
		zap.Int("failed", res.Secret.Failed),
	)

	res.Pass = res.Secret.Failed == 0
	return res
}
