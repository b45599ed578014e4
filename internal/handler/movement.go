package handler

import (
	"math"
	"time"

	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
)

// Movement is client-authoritative: the client simulates its own physics and
// sends position samples; the server records them for the streaming grid and
// the targeter. Height is clamped to a sane band around the terrain amplitude
// so a corrupt sample cannot fling the avatar into NaN-land.
const maxAltitude = 500

// HandleMove processes C_MOVE: one position sample per frame (client-side).
func HandleMove(sess *net.Session, r *packet.Reader, deps *Deps) {
	x := r.ReadF()
	y := r.ReadF()
	z := r.ReadF()
	heading := r.ReadF()

	if !finite(x) || !finite(y) || !finite(z) || !finite(heading) {
		return
	}
	if y < -maxAltitude || y > maxAltitude {
		return
	}

	player := deps.World.GetBySession(sess.ID)
	if player == nil {
		return
	}

	deps.World.UpdatePosition(sess.ID, x, y, z, heading, time.Now().UnixNano())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
