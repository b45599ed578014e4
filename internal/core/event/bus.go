package event

// Bus is a double-buffered queue for the world events this server emits.
// Events emitted in tick N are delivered in tick N+1, in emission order,
// after the input phase has run. Emit, subscribe and dispatch all happen on
// the game loop goroutine; no locking.
type Bus struct {
	front []Event
	back  []Event

	chunkLoaded   []func(ChunkLoaded)
	chunkUnloaded []func(ChunkUnloaded)
	playerJoined  []func(PlayerJoined)
	playerLeft    []func(PlayerLeft)
}

func NewBus() *Bus {
	return &Bus{}
}

// Emit queues an event into the back buffer (delivered next tick).
func (b *Bus) Emit(ev Event) {
	b.back = append(b.back, ev)
}

func (b *Bus) OnChunkLoaded(fn func(ChunkLoaded)) {
	b.chunkLoaded = append(b.chunkLoaded, fn)
}

func (b *Bus) OnChunkUnloaded(fn func(ChunkUnloaded)) {
	b.chunkUnloaded = append(b.chunkUnloaded, fn)
}

func (b *Bus) OnPlayerJoined(fn func(PlayerJoined)) {
	b.playerJoined = append(b.playerJoined, fn)
}

func (b *Bus) OnPlayerLeft(fn func(PlayerLeft)) {
	b.playerLeft = append(b.playerLeft, fn)
}

// SwapBuffers rotates back→front and clears the new back buffer.
// Called once at tick start.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front[:0]
}

// DispatchAll delivers the front buffer to the subscribed handlers, in the
// order the events were emitted.
func (b *Bus) DispatchAll() {
	for _, ev := range b.front {
		switch e := ev.(type) {
		case ChunkLoaded:
			for _, fn := range b.chunkLoaded {
				fn(e)
			}
		case ChunkUnloaded:
			for _, fn := range b.chunkUnloaded {
				fn(e)
			}
		case PlayerJoined:
			for _, fn := range b.playerJoined {
				fn(e)
			}
		case PlayerLeft:
			for _, fn := range b.playerLeft {
				fn(e)
			}
		}
	}
}
