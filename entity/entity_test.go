package entity_test

import (
	"testing"

	"github.com/evocore/evo"
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/entity"
	"github.com/stretchr/testify/require"
)

type counter struct {
	evalCalls int
}

func (c *counter) CreateDNA() (*dna.DNA, error) {
	return dna.New(), nil
}

func (c *counter) LoadFromDNA(d *dna.DNA) (any, error) {
	return "phenotype", nil
}

func (c *counter) EvaluateFitness(p any) (float64, error) {
	c.evalCalls++
	return 42, nil
}

func TestLifecycleMonotonicity(t *testing.T) {
	bp := &counter{}
	e := entity.New(bp)
	require.Equal(t, entity.Created, e.State())

	require.NoError(t, e.InitEntity())
	require.Equal(t, entity.Initialised, e.State())

	require.NoError(t, e.LoadEntity())
	require.Equal(t, entity.Loaded, e.State())

	f, err := e.EnsureFitness()
	require.NoError(t, err)
	require.Equal(t, 42.0, f)
	require.Equal(t, entity.Ready, e.State())
}

func TestEnsureFitnessIsIdempotent(t *testing.T) {
	bp := &counter{}
	e := entity.New(bp)
	require.NoError(t, e.InitEntity())
	require.NoError(t, e.LoadEntity())

	_, err := e.EnsureFitness()
	require.NoError(t, err)
	_, err = e.EnsureFitness()
	require.NoError(t, err)

	require.Equal(t, 1, bp.evalCalls)
}

func TestSkippingStateErrors(t *testing.T) {
	bp := &counter{}
	e := entity.New(bp)
	err := e.LoadEntity()
	require.ErrorIs(t, err, evo.ErrInvalidConfiguration)
}

func TestFreeAndReuseCycle(t *testing.T) {
	bp := &counter{}
	e := entity.New(bp)
	first := e.ID()
	require.NoError(t, e.InitEntity())
	require.NoError(t, e.MarkAsFree())
	require.Equal(t, entity.Free, e.State())
	require.Nil(t, e.DNA())

	require.NoError(t, e.MarkAsCreated())
	require.Equal(t, entity.Created, e.State())
	require.NotEqual(t, first, e.ID())
}

func TestDisposedEntityRejectsCalls(t *testing.T) {
	bp := &counter{}
	e := entity.New(bp)
	e.Dispose()
	err := e.InitEntity()
	require.ErrorIs(t, err, evo.ErrDisposed)
}

func TestCopyFromDeepCopies(t *testing.T) {
	bp := &counter{}
	src := entity.New(bp)
	require.NoError(t, src.InitEntity())
	require.NoError(t, src.LoadEntity())
	_, err := src.EnsureFitness()
	require.NoError(t, err)

	dst := entity.New(bp)
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, src.Fitness(), dst.Fitness())
	require.Equal(t, src.State(), dst.State())
	require.NotSame(t, src.DNA(), dst.DNA())
}
