package placement

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/patrickmn/go-cache"
	"k8s.io/klog/v2"

	"github.com/dmfb-tools/reconfig-placement/apis/config"
	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
)

const (
	Name = "DMFB_ReconfigPlacement"
)

// Problem is the reconfigurable placement problem for microfluidic biochips.
// It decodes chromosomes handed over by a search engine, checks them against
// the chip and the interference graph, scores them, and keeps the best
// feasible placements in its Archive.
//
// Decoding and scoring are pure; the archive is the only shared state.
type Problem struct {
	instance    *dmfb.Instance
	codec       *Codec
	constraints *ConstraintEvaluator
	scorer      *Scorer
	archive     *Archive
	cache       *cache.Cache

	parallelism int
	logger      klog.Logger

	evaluations atomic.Int64
	feasible    atomic.Int64
}

var _ framework.Problem = &Problem{}

// scored is what the decode cache remembers for a chromosome.
type scored struct {
	placement   *Placement
	constraints []float64
}

// New validates the instance and arguments and builds the problem. A nil args
// uses the defaults.
func New(ctx context.Context, inst *dmfb.Instance, args *config.PlacementArgs) (*Problem, error) {
	logger := klog.FromContext(ctx)

	if args == nil {
		args = &config.PlacementArgs{}
	}
	a := *args
	config.SetDefaults_PlacementArgs(&a)
	if err := config.ValidatePlacementArgs(nil, &a); err != nil {
		return nil, fmt.Errorf("invalid placement args: %w", err)
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instance: %w", err)
	}

	alpha := inst.Alpha
	if a.Alpha != nil {
		alpha = *a.Alpha
	}

	codec, err := NewCodec(inst.Architecture, inst.Operations)
	if err != nil {
		return nil, err
	}

	p := &Problem{
		instance:    inst,
		codec:       codec,
		constraints: NewConstraintEvaluator(inst.Architecture, inst.Operations, inst.Interference),
		scorer:      NewScorer(inst.Operations, inst.Communication, alpha),
		archive:     NewArchive(logger.WithName("archive")),
		parallelism: int(a.Parallelism),
		logger:      logger,
	}
	if ttl := a.DecodeCacheTTL.Duration; ttl > 0 {
		p.cache = cache.New(ttl, 2*ttl)
	}

	logger.V(2).Info("created placement problem",
		"architecture", inst.Architecture.String(),
		"operations", inst.Operations.Len(),
		"interferenceEdges", inst.Interference.Len(),
		"communicationEdges", inst.Communication.Len(),
		"alpha", alpha,
		"bitsPerVariable", codec.Layout().Width(),
		"constraints", p.constraints.Len())
	return p, nil
}

func (p *Problem) Name() string {
	return Name
}

// NumVariables is one variable per operation; Input and Output variables are
// carried but ignored.
func (p *Problem) NumVariables() int {
	return p.instance.Operations.Len()
}

func (p *Problem) NumObjectives() int {
	return 1
}

func (p *Problem) NumConstraints() int {
	return p.constraints.Len()
}

func (p *Problem) NewSolution() framework.Solution {
	return framework.NewBinarySolution(p.NumVariables(), p.codec.Layout().Width())
}

func (p *Problem) Instance() *dmfb.Instance {
	return p.instance
}

func (p *Problem) Codec() *Codec {
	return p.codec
}

func (p *Problem) Archive() *Archive {
	return p.archive
}

func (p *Problem) Alpha() float64 {
	return p.scorer.Alpha()
}

// Stats returns the number of evaluations and how many of them were feasible.
func (p *Problem) Stats() (evaluations, feasible int64) {
	return p.evaluations.Load(), p.feasible.Load()
}

// Evaluate decodes and scores sol, and offers it to the archive when it
// satisfies every constraint. The single objective is the combined Obj.
//
// Evaluate is total: any bit pattern, including short or missing variables,
// yields an evaluation.
func (p *Problem) Evaluate(sol framework.Solution) framework.Evaluation {
	pl, constraints := p.score(asBinary(sol, p.logger))
	return p.record(pl, constraints)
}

// Decode returns the scored placement encoded by sol without touching the
// archive.
func (p *Problem) Decode(sol *framework.BinarySolution) *Placement {
	pl, _ := p.score(sol)
	return pl
}

// score is pure apart from the decode cache.
func (p *Problem) score(sol *framework.BinarySolution) (*Placement, []float64) {
	var key string
	if p.cache != nil {
		key = sol.String()
		if v, ok := p.cache.Get(key); ok {
			s := v.(*scored)
			return s.placement, slices.Clone(s.constraints)
		}
	}

	pl := p.codec.Decode(sol)
	p.scorer.Score(pl)
	constraints := p.constraints.Evaluate(pl)

	if p.cache != nil {
		p.cache.Set(key, &scored{placement: pl, constraints: slices.Clone(constraints)}, cache.DefaultExpiration)
	}
	return pl, constraints
}

func (p *Problem) record(pl *Placement, constraints []float64) framework.Evaluation {
	ev := framework.Evaluation{
		Objectives:  []float64{pl.Obj},
		Constraints: constraints,
	}
	p.evaluations.Add(1)
	if ev.Feasible() {
		p.feasible.Add(1)
		p.archive.Offer(pl)
	}
	return ev
}

func asBinary(sol framework.Solution, logger klog.Logger) *framework.BinarySolution {
	if bs, ok := sol.(*framework.BinarySolution); ok && bs != nil {
		return bs
	}
	logger.Error(nil, "unexpected solution type, decoding as all-zero", "type", fmt.Sprintf("%T", sol))
	return &framework.BinarySolution{}
}
