package system

import (
	"time"

	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/scripting"
	"github.com/wanderlands/server/internal/world"
)

// InteractionSystem rescans each player's surroundings against the
// environment catalog and pushes a prompt frame whenever the prompt state or
// target changes. Phase 3 (PostUpdate).
type InteractionSystem struct {
	world     *world.State
	scripting *scripting.Engine
}

func NewInteractionSystem(ws *world.State, eng *scripting.Engine) *InteractionSystem {
	return &InteractionSystem{world: ws, scripting: eng}
}

func (s *InteractionSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *InteractionSystem) Update(_ time.Duration) {
	objects := s.world.EnvObjects()
	s.world.AllPlayers(func(p *world.PlayerInfo) {
		if !p.Targeter.Update(p.X, p.Z, objects) {
			return
		}
		sendPromptPacket(p, s.scripting)
	})
}

// sendPromptPacket streams the current prompt to the client. A PromptNone
// frame carries only the state byte and clears any prompt on screen.
func sendPromptPacket(p *world.PlayerInfo, eng *scripting.Engine) {
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_PROMPT)
	w.WriteC(byte(p.Targeter.State()))

	target := p.Targeter.Target()
	if target != nil {
		verb, prompt := "", ""
		if it := eng.GetInteraction(target.Kind(), target.Label()); it != nil {
			verb, prompt = it.Verb, it.Prompt
		}
		w.WriteD(target.ObjectID())
		w.WriteS(target.Kind())
		w.WriteS(target.Label())
		w.WriteS(verb)
		w.WriteS(prompt)
	}
	p.Session.Send(w.Bytes())
}
