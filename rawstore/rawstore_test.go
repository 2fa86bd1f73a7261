package rawstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarr/rawstore"
)

func TestNew_ZeroCapacity(t *testing.T) {
	s, err := rawstore.New[int](0)
	require.NoError(t, err)
	require.Equal(t, 0, s.Cap())

	// Releasing an empty storage is a no-op.
	s.Release()
	require.Equal(t, 0, s.Cap())
}

func TestNew_AllocatesRequestedCapacity(t *testing.T) {
	s, err := rawstore.New[string](8)
	require.NoError(t, err)
	require.Equal(t, 8, s.Cap())
}

func TestNew_NegativeCapacity(t *testing.T) {
	_, err := rawstore.New[int](-1)
	require.ErrorIs(t, err, rawstore.ErrNegativeCapacity)
}

func TestNew_UnsatisfiableRequest(t *testing.T) {
	// One slot past the representable budget must be refused outright.
	_, err := rawstore.New[int64](rawstore.MaxCapacity[int64]() + 1)
	require.ErrorIs(t, err, rawstore.ErrAllocation)
}

func TestAt_SlotIsStableAndWritable(t *testing.T) {
	s, err := rawstore.New[int](4)
	require.NoError(t, err)

	*s.At(2) = 42
	require.Equal(t, 42, *s.At(2))

	// Same slot, same address.
	require.Same(t, s.At(2), s.At(2))
}

func TestAt_OutOfRangePanics(t *testing.T) {
	s, err := rawstore.New[int](2)
	require.NoError(t, err)

	require.Panics(t, func() { s.At(2) })
	require.Panics(t, func() { s.At(-1) })

	empty, err := rawstore.New[int](0)
	require.NoError(t, err)
	require.Panics(t, func() { empty.At(0) })
}

func TestSwap_ExchangesBlockAndCapacity(t *testing.T) {
	a, err := rawstore.New[int](2)
	require.NoError(t, err)
	b, err := rawstore.New[int](5)
	require.NoError(t, err)

	*a.At(0) = 1
	*b.At(0) = 9

	a.Swap(&b)

	require.Equal(t, 5, a.Cap())
	require.Equal(t, 2, b.Cap())
	require.Equal(t, 9, *a.At(0))
	require.Equal(t, 1, *b.At(0))
}

func TestSwap_SelfIsNoOp(t *testing.T) {
	s, err := rawstore.New[int](3)
	require.NoError(t, err)
	*s.At(1) = 7

	s.Swap(&s)

	require.Equal(t, 3, s.Cap())
	require.Equal(t, 7, *s.At(1))
}

func TestMove_TransfersOwnership(t *testing.T) {
	src, err := rawstore.New[int](4)
	require.NoError(t, err)
	*src.At(3) = 11

	dst := src.Move()

	require.Equal(t, 0, src.Cap())
	require.Equal(t, 4, dst.Cap())
	require.Equal(t, 11, *dst.At(3))
}

func TestRelease_DropsBlock(t *testing.T) {
	s, err := rawstore.New[int](4)
	require.NoError(t, err)

	s.Release()
	require.Equal(t, 0, s.Cap())
	require.Panics(t, func() { s.At(0) })
}
