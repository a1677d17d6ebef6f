package variant_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/mocks"
)

type node struct{ id uint64 }

func (n *node) InstanceID() uint64 { return n.id }

func installMock(t *testing.T) *mocks.MockRuntime {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)
	variant.SetRuntime(rt)
	t.Cleanup(func() { variant.SetRuntime(nil) })
	return rt
}

func TestCallForwardsToRuntime(t *testing.T) {
	rt := installMock(t)

	recv := variant.FromString("abc")
	rt.EXPECT().
		Call(gomock.Any(), "substr", gomock.Any()).
		DoAndReturn(func(r *variant.Variant, method string, args []variant.Variant) (variant.Variant, variant.CallStatus) {
			assert.Equal(t, "abc", r.ToString())
			require.Len(t, args, 2)
			from, to := args[0].ToInt64(), args[1].ToInt64()
			return variant.FromString(r.ToString()[from:to]), variant.CallStatus{}
		})

	got, err := recv.Call("substr", variant.FromInt64(1), variant.FromInt64(3))
	require.NoError(t, err)
	assert.Equal(t, "bc", got.ToString())
}

func TestCallStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status variant.CallStatus
		want   variant.CallErrorKind
		msg    string
	}{
		{"invalid method", variant.CallStatus{Code: variant.SysCallInvalidMethod}, variant.CallInvalidMethod, `call to "m": invalid method`},
		{"invalid argument", variant.CallStatus{Code: variant.SysCallInvalidArgument, Argument: 1, Expected: 2}, variant.CallInvalidArgument, `call to "m": invalid argument at index 1, expected Int`},
		{"too many", variant.CallStatus{Code: variant.SysCallTooManyArguments, Argument: 2}, variant.CallTooManyArguments, `call to "m": too many arguments, expected 2`},
		{"too few", variant.CallStatus{Code: variant.SysCallTooFewArguments, Argument: 3}, variant.CallTooFewArguments, `call to "m": too few arguments, expected 3`},
		{"null instance", variant.CallStatus{Code: variant.SysCallInstanceIsNull}, variant.CallInstanceIsNull, `call to "m": instance is null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := installMock(t)
			rt.EXPECT().Call(gomock.Any(), "m", gomock.Any()).Return(variant.Nil(), tt.status)

			v := variant.FromInt64(1)
			ret, err := v.Call("m")
			require.Error(t, err)
			assert.True(t, ret.IsNil())
			assert.ErrorIs(t, err, &variant.CallError{Kind: tt.want})
			assert.EqualError(t, err, tt.msg)

			round := variant.CallErrorFromSys(variant.CallStatusFor(variant.CallErrorFromSys(tt.status)))
			assert.Equal(t, tt.want, round.Kind)
		})
	}
}

func TestCallErrorFromSysUnknownCodePanics(t *testing.T) {
	assert.Nil(t, variant.CallErrorFromSys(variant.CallStatus{Code: variant.SysCallOK}))
	assert.Panics(t, func() {
		variant.CallErrorFromSys(variant.CallStatus{Code: 42})
	})
}

func TestEqualDelegatesOnMatchingTags(t *testing.T) {
	rt := installMock(t)
	rt.EXPECT().Equal(gomock.Any(), gomock.Any()).Return(true).Times(1)

	assert.True(t, variant.FromInt64(1).Equal(variant.FromInt64(2)))
	assert.False(t, variant.FromInt64(1).Equal(variant.FromString("1")))
}

func TestHasMethod(t *testing.T) {
	rt := installMock(t)
	rt.EXPECT().HasMethod(gomock.Any(), "size").Return(true)

	assert.True(t, variant.FromArray(variant.NewArray()).HasMethod("size"))
}

func TestCannotCastUsesRuntimeClassName(t *testing.T) {
	rt := installMock(t)
	rt.EXPECT().ClassName(gomock.Any()).Return("Node2D")

	type sprite struct{ node }
	_, err := variant.Decode[*sprite](variant.FromObject(&node{id: 1}))
	require.Error(t, err)
	assert.Equal(t, "cannot cast object of class Node2D to variant_test.sprite", err.Error())

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Node2D", e.Class)
}
