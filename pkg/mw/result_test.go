package mw

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Shapes(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	args := Args{"a", 1}

	ok := Success(id, args)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsTolerated())
	assert.False(t, ok.IsFailure())
	assert.NoError(t, ok.Err())
	assert.Empty(t, ok.Errors())
	assert.Equal(t, args, ok.Args())
	assert.Equal(t, id, ok.ID())
	assert.False(t, ok.CreatedAt().IsZero())

	boom := errors.New("boom")
	failed := Fail(id, boom)
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())
	assert.False(t, failed.IsSuccess())
	assert.ErrorIs(t, failed.Err(), boom)
	assert.Nil(t, failed.Args())

	cancelled := Cancel(id, boom)
	assert.True(t, cancelled.IsFailure())
	assert.True(t, cancelled.IsCancel())
}

func TestResult_ToleratedJoinsErrors(t *testing.T) {
	t.Parallel()

	first := &ChainError{Err: errors.New("first")}
	second := &ChainError{Err: errors.New("second")}

	res := Tolerated(uuid.New(), Args{}, []*ChainError{first, second})
	require.True(t, res.IsTolerated())
	assert.False(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Len(t, res.Errors(), 2)

	errs := Unjoin(res.Err())
	require.Len(t, errs, 2)
	assert.Same(t, first, errs[0])
	assert.Same(t, second, errs[1])
}

func TestResult_ToleratedWithoutErrorsIsSuccess(t *testing.T) {
	t.Parallel()

	res := Tolerated(uuid.New(), Args{1}, nil)
	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsTolerated())
}

func TestFold(t *testing.T) {
	t.Parallel()

	handlers := FoldHandlers[string]{
		OnSuccess:   func(args Args) string { return "ok" },
		OnTolerated: func(args Args, errs []*ChainError) string { return "tolerated" },
		OnFailure:   func(err error) string { return "failed: " + err.Error() },
		OnCancel:    func(err error) string { return "cancelled" },
	}

	id := uuid.New()
	assert.Equal(t, "ok", Fold(Success(id, nil), handlers))
	assert.Equal(t, "tolerated", Fold(Tolerated(id, nil, []*ChainError{{Err: errors.New("x")}}), handlers))
	assert.Equal(t, "failed: x", Fold(Fail(id, errors.New("x")), handlers))
	assert.Equal(t, "cancelled", Fold(Cancel(id, errors.New("x")), handlers))
	assert.Equal(t, "", Fold(Success(id, nil), FoldHandlers[string]{}))
}
