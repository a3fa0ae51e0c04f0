package exterr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchy_AncestorMatching(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		err       error
		ancestors []error
	}{
		{"warning", NewWarning("w"), []error{ErrWarning, ErrExternalInteraction}},
		{"failure", NewFailure("f"), []error{ErrFailure, ErrExternalInteraction}},
		{"interface", NewInterface("i"), []error{ErrInterface, ErrFailure, ErrExternalInteraction}},
		{"configuration", NewConfiguration("c"), []error{ErrConfiguration, ErrInterface, ErrFailure, ErrExternalInteraction}},
		{"dependency", NewDependency("d"), []error{ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"data", NewData("d"), []error{ErrData, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"operational", NewOperational("o"), []error{ErrOperational, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"connection", NewConnection("c"), []error{ErrConnection, ErrOperational, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"timeout", NewTimeout("t"), []error{ErrTimeout, ErrOperational, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"authentication", NewAuthentication("a"), []error{ErrAuthentication, ErrOperational, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"authorization", NewAuthorization("a"), []error{ErrAuthorization, ErrOperational, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"delivery", NewDelivery("d"), []error{ErrDelivery, ErrOperational, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"integrity", NewIntegrity("i"), []error{ErrIntegrity, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"programming", NewProgramming("p"), []error{ErrProgramming, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"not_supported", NewNotSupported("n"), []error{ErrNotSupported, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"invalid_data", NewInvalidData("v"), []error{ErrInvalidData, ErrDependency, ErrFailure, ErrExternalInteraction}},
		{"internal", NewInternal("i"), []error{ErrInternal, ErrFailure, ErrExternalInteraction}},
		{"processing", NewProcessing("p"), []error{ErrProcessing, ErrInternal, ErrFailure, ErrExternalInteraction}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, ancestor := range tc.ancestors {
				assert.ErrorIs(t, tc.err, ancestor)
			}
		})
	}
}

func TestHierarchy_SiblingsDoNotMatch(t *testing.T) {
	t.Parallel()
	assert.NotErrorIs(t, NewTimeout("t"), ErrConnection)
	assert.NotErrorIs(t, NewAuthentication("a"), ErrAuthorization)
	assert.NotErrorIs(t, NewData("d"), ErrOperational)
	assert.NotErrorIs(t, NewInternal("i"), ErrDependency)
	assert.NotErrorIs(t, NewConfiguration("c"), ErrDependency)
	assert.NotErrorIs(t, NewWarning("w"), ErrFailure)
}

func TestHierarchy_ParentDoesNotMatchChild(t *testing.T) {
	t.Parallel()
	assert.NotErrorIs(t, NewOperational("o"), ErrConnection)
	assert.NotErrorIs(t, NewFailure("f"), ErrInternal)
	assert.NotErrorIs(t, New(ErrExternalInteraction, "root"), ErrWarning)
}

func TestError_Rendering(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "processing error: boom", NewProcessing("boom").Error())
	assert.Equal(t, "external interaction error", New(ErrExternalInteraction, "").Error())
	assert.Equal(t,
		"connection failure: dial upstream: socket closed",
		Wrap(ErrConnection, "dial upstream", errors.New("socket closed")).Error())
}

func TestWrap_CausePreserved(t *testing.T) {
	t.Parallel()
	base := errors.New("socket closed")
	err := Wrap(ErrConnection, "dial upstream", base)

	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, ErrConnection)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Same(t, ErrConnection, e.Class())
}

func TestError_MatchesThroughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("notifying billing: %w", NewDelivery("callback never acknowledged"))

	assert.ErrorIs(t, err, ErrDelivery)
	assert.ErrorIs(t, err, ErrOperational)
	assert.ErrorIs(t, err, ErrExternalInteraction)
	assert.NotErrorIs(t, err, ErrInterface)
}

func TestClass_ErrorString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "timeout", ErrTimeout.Error())
	assert.Equal(t, "external interaction error", ErrExternalInteraction.Error())
}
