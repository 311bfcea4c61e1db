package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := Auth("token rejected")
		assert.Equal(t, "token rejected", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("401 unauthorized")
		err := Wrap(cause, ErrCodeAuth, "token rejected")
		assert.Equal(t, "token rejected: 401 unauthorized", err.Error())
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrapf(cause, ErrCodeUnavailable, "query database %s", "db-1")

	require.NotNil(t, err)
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "query database db-1: connection refused", err.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "should vanish"))
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "auth matches", err: Auth("x"), check: IsAuth, want: true},
		{name: "config matches", err: Config("x"), check: IsConfig, want: true},
		{name: "malformed matches", err: Malformedf("row %s", "r1"), check: IsMalformed, want: true},
		{name: "rate limited matches", err: RateLimited("x"), check: IsRateLimited, want: true},
		{name: "unavailable matches", err: Unavailable("x"), check: IsUnavailable, want: true},
		{name: "not found matches", err: NotFound("x"), check: IsNotFound, want: true},
		{name: "auth does not match config", err: Auth("x"), check: IsConfig, want: false},
		{name: "plain error matches nothing", err: stderrors.New("x"), check: IsAuth, want: false},
		{name: "nil matches nothing", err: nil, check: IsAuth, want: false},
		{
			name:  "predicate sees through wrapping",
			err:   fmt.Errorf("cycle: %w", RateLimited("throttled")),
			check: IsRateLimited,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(Auth("bad token")))
	assert.True(t, IsFatal(Config("missing database id")))
	assert.False(t, IsFatal(Unavailable("flaky network")))
	assert.False(t, IsFatal(Malformed("no due date")))
	assert.False(t, IsFatal(nil))
}
