package status_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/status"
)

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b status.Code
		want bool
	}{
		{
			name: "same domain same value",
			a:    fileErrors.Code(fileNotFound),
			b:    fileErrors.Code(fileNotFound),
			want: true,
		},
		{
			name: "same domain different value",
			a:    fileErrors.Code(fileNotFound),
			b:    fileErrors.Code(fileDenied),
		},
		{
			name: "generic domain",
			a:    fileErrors.Code(fileNotFound),
			b:    status.Generic.Code(status.ErrcNoSuchFileOrDirectory),
			want: true,
		},
		{
			name: "through generic decoding",
			a:    fileErrors.Code(fileNotFound),
			b:    legacyErrors.Code(2),
			want: true,
		},
		{
			name: "different generic decoding",
			a:    fileErrors.Code(fileDenied),
			b:    legacyErrors.Code(2),
		},
		{
			name: "declared by one side only",
			a:    fileErrors.Code(fileCorrupt),
			b:    legacyErrors.Code(9),
			want: true,
		},
		{
			name: "both undecodable",
			a:    fileErrors.Code(fileCorrupt),
			b:    legacyErrors.Code(3),
		},
		{
			name: "unknown is never equivalent to unknown",
			a:    fileErrors.Code(fileCorrupt),
			b:    status.Generic.Code(status.ErrcUnknown),
		},
		{
			name: "successes",
			a:    fileErrors.Code(fileOK),
			b:    legacyErrors.Code(0),
			want: true,
		},
		{
			name: "erased and typed",
			a:    status.Erase(fileErrors.Code(fileDenied)),
			b:    fileErrors.Code(fileDenied),
			want: true,
		},
		{
			name: "erased across domains",
			a:    status.Erase(fileErrors.Code(fileNotFound)),
			b:    status.Erase(legacyErrors.Code(2)),
			want: true,
		},
		{
			name: "errored and typed",
			a:    fileErrors.Errored(fileCorrupt),
			b:    legacyErrors.Code(9),
			want: true,
		},
		{
			name: "relocated",
			a:    status.Relocate(versions.Code(version{1, 2})),
			b:    versions.Code(version{1, 2}),
			want: true,
		},
		{
			name: "both empty",
			a:    status.StatusCode[fileErr]{},
			b:    status.ErasedCode{},
			want: true,
		},
		{
			name: "empty and non-empty",
			a:    status.StatusCode[fileErr]{},
			b:    fileErrors.Code(fileOK),
		},
		{
			name: "nil and empty",
			a:    nil,
			b:    status.StatusCode[legacyErr]{},
			want: true,
		},
		{
			name: "non-erasable domain",
			a:    labels.Code("x"),
			b:    fileErrors.Code(fileCorrupt),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, status.Equivalent(tt.a, tt.b))
			require.Equal(t, tt.want, status.Equivalent(tt.b, tt.a), "not symmetric")
			require.Equal(t, !tt.want, status.NotEquivalent(tt.a, tt.b))
		})
	}
}

// TestEquivalent_Properties checks reflexivity and symmetry over every pair of
// a mixed set of codes.
func TestEquivalent_Properties(t *testing.T) {
	erroredTyped := fileErrors.Errored(fileDenied)
	erroredErased := status.ErroredOf(legacyErrors.Code(2))
	plain := fileErrors.Code(fileNotFound)

	codes := []status.Code{
		status.StatusCode[fileErr]{},
		fileErrors.Code(fileOK),
		fileErrors.Code(fileNotFound),
		fileErrors.Code(fileDenied),
		fileErrors.Code(fileCorrupt),
		status.Erase(fileErrors.Code(fileNotFound)),
		fileErrors.Errored(fileCorrupt),
		legacyErrors.Code(0),
		legacyErrors.Code(2),
		legacyErrors.Code(5),
		legacyErrors.Code(9),
		status.ErroredOf(legacyErrors.Code(9)),
		status.Generic.Code(status.ErrcTimedOut),
		status.Generic.Code(status.ErrcNoSuchFileOrDirectory),
		status.Generic.Code(status.ErrcUnknown),
		versions.Code(version{4, 2}),
		status.Relocate(versions.Code(version{0, 1})),
		labels.Code(""),
		labels.Code("stale"),
		&erroredTyped,
		&erroredErased,
		&plain,
		gauges.Code(gauge(math.NaN())),
		status.Erase(gauges.Code(gauge(math.NaN()))),
		gauges.Code(gauge(math.Copysign(0, -1))),
		gauges.Code(0),
		flags.Code(true),
		status.Relocate(alarms.Code(alarm{Armed: true, Zone: 3})),
		(*status.StatusCode[fileErr])(nil),
	}

	for i, a := range codes {
		require.True(t, status.Equivalent(a, a), "not reflexive: %v", a)
		for j, b := range codes {
			require.Equal(t, status.Equivalent(a, b), status.Equivalent(b, a),
				"not symmetric: %d=%v %d=%v", i, a, j, b)
		}
	}
}

func TestEquivalent_ComparesFloatBits(t *testing.T) {
	nan := gauges.Code(gauge(math.NaN()))
	negZero := gauges.Code(gauge(math.Copysign(0, -1)))
	zero := gauges.Code(0)

	require.True(t, status.Equivalent(nan, nan))
	require.True(t, status.Equivalent(nan, status.Erase(nan)))
	require.True(t, nan.StrictlyEqual(gauges.Code(gauge(math.NaN()))))
	require.True(t, status.Equivalent(zero, gauges.Code(0)))

	require.False(t, status.Equivalent(negZero, zero))
	require.False(t, status.Equivalent(status.Erase(negZero), status.Erase(zero)))
	require.False(t, negZero.StrictlyEqual(zero))
}

func TestEquivalent_PointerForms(t *testing.T) {
	typed := fileErrors.Errored(fileDenied)
	erased := status.ErroredOf(legacyErrors.Code(2))

	require.True(t, status.Equivalent(&typed, &typed))
	require.True(t, status.Equivalent(&typed, typed))
	require.True(t, status.Equivalent(&erased, &erased))
	require.True(t, status.Equivalent(&erased, fileErrors.Code(fileNotFound)))

	v, ok := fileErrors.ValueOf(&typed)
	require.True(t, ok)
	require.Equal(t, fileDenied, v)
}

func TestEquivalent_NilPointer(t *testing.T) {
	var nilCode *status.StatusCode[fileErr]

	require.NotPanics(t, func() {
		require.False(t, status.Equivalent(nilCode, fileErrors.Code(fileNotFound)))
		require.True(t, status.Equivalent(nilCode, nil))
		require.Nil(t, status.ToJSON(nilCode))
		require.Empty(t, status.ValueString(nilCode))
	})

	_, ok := status.From(nilCode)
	require.False(t, ok)
	require.False(t, status.EquivalentValue(fileErrors.Code(fileNotFound), nilCode))
}

func TestEquivalentTo(t *testing.T) {
	require.True(t, status.EquivalentTo[status.Errc](legacyErrors.Code(5), status.ErrcTimedOut))
	require.False(t, status.EquivalentTo[status.Errc](legacyErrors.Code(5), status.ErrcInterrupted))
}

func TestEquivalentValue(t *testing.T) {
	c := fileErrors.Code(fileNotFound)

	require.True(t, status.EquivalentValue(c, legacyError{code: 2}))
	require.True(t, status.EquivalentValue(c, status.ErrcNoSuchFileOrDirectory))
	require.False(t, status.EquivalentValue(c, legacyError{code: 5}))
	require.False(t, status.EquivalentValue(c, "no conversion"))
	require.False(t, status.EquivalentValue(c, nil))
}
