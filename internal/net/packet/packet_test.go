package packet

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriterReaderFields(t *testing.T) {
	w := NewWriterWithOpcode(S_OPCODE_CHUNK_LOAD)
	w.WriteD(-3)
	w.WriteD(7)
	w.WriteC(2)
	w.WriteF(0.75)
	w.WriteH(33)
	w.WriteS("Graystone Peak")

	r := NewReader(w.Bytes())
	require.Equal(t, byte(S_OPCODE_CHUNK_LOAD), r.Opcode())
	require.Equal(t, int32(-3), r.ReadD())
	require.Equal(t, int32(7), r.ReadD())
	require.Equal(t, byte(2), r.ReadC())
	require.Equal(t, 0.75, r.ReadF())
	require.Equal(t, uint16(33), r.ReadH())
	require.Equal(t, "Graystone Peak", r.ReadS())
	require.Zero(t, r.Remaining())
}

func TestReaderTruncatedReturnsZero(t *testing.T) {
	r := NewReader([]byte{C_OPCODE_MOVE, 0x01})
	require.Equal(t, byte(1), r.ReadC())
	require.Zero(t, r.ReadD())
	require.Zero(t, r.ReadF())
	require.Zero(t, r.ReadH())
	require.Equal(t, "", r.ReadS())
}

func TestReaderUnterminatedString(t *testing.T) {
	r := NewReader([]byte{C_OPCODE_LOGIN, 'a', 'b', 'c'})
	require.Equal(t, "abc", r.ReadS())
	require.Zero(t, r.Remaining())
}

func TestRegistryStateGating(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	called := false
	reg.Register(C_OPCODE_ENTER, []SessionState{StateAuthenticated}, func(_ any, _ *Reader) {
		called = true
	})

	err := reg.Dispatch(nil, StateHandshake, []byte{C_OPCODE_ENTER})
	require.Error(t, err)
	require.False(t, called)

	require.NoError(t, reg.Dispatch(nil, StateAuthenticated, []byte{C_OPCODE_ENTER}))
	require.True(t, called)
}

func TestRegistryUnknownOpcodeIgnored(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	require.NoError(t, reg.Dispatch(nil, StateInWorld, []byte{0xFE}))
}

func TestRegistryEmptyPacket(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	require.Error(t, reg.Dispatch(nil, StateInWorld, nil))
}

func TestRegistryRecoversPanic(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	reg.Register(C_OPCODE_MOVE, []SessionState{StateInWorld}, func(_ any, _ *Reader) {
		panic("boom")
	})
	err := reg.Dispatch(nil, StateInWorld, []byte{C_OPCODE_MOVE})
	require.Error(t, err)
}
