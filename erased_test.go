package status_test

import (
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/status"
)

func TestErase_RoundTrip(t *testing.T) {
	for _, v := range []fileErr{fileOK, fileNotFound, fileDenied, fileCorrupt, -7} {
		c := fileErrors.Code(v)
		e := status.Erase(c)

		require.True(t, status.SameDomain(e.Domain(), fileErrors))
		require.Equal(t, c.Success(), e.Success())
		require.Equal(t, c.Failure(), e.Failure())
		require.Equal(t, c.Message(), e.Message())
		require.Equal(t, c.Generic(), e.Generic())
		require.Equal(t, c.String(), e.String())

		back, ok := status.Unerase(e, fileErrors)
		require.True(t, ok)
		require.True(t, back.StrictlyEqual(c))
	}
}

func TestErase_Empty(t *testing.T) {
	e := status.Erase(status.StatusCode[fileErr]{})

	require.True(t, e.Empty())
	require.Nil(t, e.Domain())
	require.False(t, e.Success())
	require.False(t, e.Failure())
	require.Equal(t, "(empty)", e.Message())
	require.Equal(t, status.ErrcUnknown, e.Generic())
	require.Equal(t, [status.PayloadSize]byte{}, e.Payload())
}

func TestUnerase_WrongDomain(t *testing.T) {
	e := status.Erase(legacyErrors.Code(2))

	_, ok := status.Unerase(e, fileErrors)
	require.False(t, ok)

	_, ok = status.Unerase(status.ErasedCode{}, fileErrors)
	require.False(t, ok)
}

func TestErasedCode_Payload(t *testing.T) {
	e := status.Erase(fileErrors.Code(fileDenied))
	p := e.Payload()

	require.Equal(t, uint32(fileDenied), binary.NativeEndian.Uint32(p[:4]))
	require.Equal(t, make([]byte, status.PayloadSize-4), p[4:])
}

func TestRelocate(t *testing.T) {
	v := version{Major: 3, Minor: 14}
	e := status.Relocate(versions.Code(v))

	require.Equal(t, "v3.14", e.Message())
	require.True(t, e.Failure())

	back, ok := status.Unerase(e, versions)
	require.True(t, ok)
	require.Equal(t, v, back.Value())

	p := e.Payload()
	require.Equal(t, uint32(3), binary.NativeEndian.Uint32(p[0:4]))
	require.Equal(t, uint32(14), binary.NativeEndian.Uint32(p[4:8]))
}

func TestErasedCode_Clear(t *testing.T) {
	e := status.Erase(fileErrors.Code(fileDenied))
	e.Clear()
	require.True(t, e.Empty())
}

func TestErasedCode_Binary(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		e := status.Erase(fileErrors.Code(fileNotFound))

		data, err := e.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, status.ErasedSize)
		require.Equal(t, uint64(fileErrors.ID()), binary.BigEndian.Uint64(data[:8]))

		var got status.ErasedCode
		require.NoError(t, got.UnmarshalBinary(data))
		require.True(t, status.Equivalent(e, got))
		require.Equal(t, e.Payload(), got.Payload())
	})

	t.Run("empty", func(t *testing.T) {
		data, err := status.ErasedCode{}.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, make([]byte, status.ErasedSize), data)

		got := status.Erase(fileErrors.Code(fileDenied))
		require.NoError(t, got.UnmarshalBinary(data))
		require.True(t, got.Empty())
	})

	t.Run("wrong length", func(t *testing.T) {
		var got status.ErasedCode
		err := got.UnmarshalBinary(make([]byte, status.ErasedSize-1))
		require.ErrorIs(t, err, status.ErrInvalidEncoding)
	})

	t.Run("unknown domain", func(t *testing.T) {
		data := make([]byte, status.ErasedSize)
		binary.BigEndian.PutUint64(data, uint64(status.IDFromUUID(uuid.New())))

		var got status.ErasedCode
		err := got.UnmarshalBinary(data)
		require.ErrorIs(t, err, status.ErrUnknownDomain)
	})

	t.Run("bool payloads", func(t *testing.T) {
		tests := []struct {
			name    string
			code    status.ErasedCode
			offset  int
			wantErr bool
		}{
			{"flag true", status.Erase(flags.Code(true)), -1, false},
			{"flag false", status.Erase(flags.Code(false)), -1, false},
			{"flag out of range", status.Erase(flags.Code(true)), 0, true},
			{"struct field out of range", status.Relocate(alarms.Code(alarm{Armed: true, Zone: 7})), 0, true},
			{"non-bool field is free", status.Relocate(alarms.Code(alarm{Zone: 7})), 1, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := tt.code.MarshalBinary()
				require.NoError(t, err)
				if tt.offset >= 0 {
					data[8+tt.offset] = 0xfe
				}

				var got status.ErasedCode
				err = got.UnmarshalBinary(data)
				if tt.wantErr {
					require.ErrorIs(t, err, status.ErrInvalidEncoding)
					require.True(t, got.Empty())
					return
				}
				require.NoError(t, err)
				require.Equal(t, tt.code.Domain().ID(), got.Domain().ID())
			})
		}
	})

	t.Run("domain cannot be erased", func(t *testing.T) {
		data := make([]byte, status.ErasedSize)
		binary.BigEndian.PutUint64(data, uint64(labels.ID()))

		var got status.ErasedCode
		err := got.UnmarshalBinary(data)
		require.ErrorIs(t, err, status.ErrNotErasable)
	})
}
