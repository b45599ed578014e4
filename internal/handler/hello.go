package handler

import (
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"go.uber.org/zap"
)

// HandleHello processes C_HELLO: protocol version check.
func HandleHello(sess *net.Session, r *packet.Reader, deps *Deps) {
	version := r.ReadH()
	if version != packet.ProtocolVersion {
		deps.Log.Info("protocol mismatch",
			zap.Uint64("session", sess.ID),
			zap.Uint16("client", version),
			zap.Uint16("server", packet.ProtocolVersion),
		)
		w := packet.NewWriterWithOpcode(packet.S_OPCODE_DISCONNECT)
		w.WriteS("unsupported protocol version")
		sess.Send(w.Bytes())
		sess.FlushOutput()
		sess.Close()
		return
	}

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_HELLO_OK)
	w.WriteS(deps.Config.Server.Name)
	w.WriteD(int32(deps.Config.Server.ID))
	sess.Send(w.Bytes())
	sess.SetState(packet.StateHelloOK)
}
