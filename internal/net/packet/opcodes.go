package packet

// Client → server opcodes.
const (
	C_OPCODE_HELLO    byte = 1  // protocol version check
	C_OPCODE_LOGIN    byte = 2  // account + password
	C_OPCODE_ENTER    byte = 3  // enter world
	C_OPCODE_MOVE     byte = 16 // position sample
	C_OPCODE_INTERACT byte = 17 // act on the current prompt target
	C_OPCODE_ALIVE    byte = 18 // keep-alive
	C_OPCODE_QUIT     byte = 19 // leave world and disconnect
)

// Server → client opcodes.
const (
	S_OPCODE_HELLO_OK     byte = 101
	S_OPCODE_LOGIN_RESULT byte = 102
	S_OPCODE_ENTER_OK     byte = 103
	S_OPCODE_CHUNK_LOAD   byte = 110 // cell coord + biome + heightfield
	S_OPCODE_CHUNK_UNLOAD byte = 111
	S_OPCODE_PROP_SPAWN   byte = 112 // decoration prop inside a cell
	S_OPCODE_PROP_CLEAR   byte = 113 // all props of a cell
	S_OPCODE_PROMPT       byte = 114 // interaction prompt state
	S_OPCODE_AMBIENCE     byte = 115 // biome ambience preset
	S_OPCODE_MESSAGE      byte = 116 // plain text line
	S_OPCODE_DISCONNECT   byte = 117
)

// Protocol version expected in C_OPCODE_HELLO.
const ProtocolVersion = 2

// Login result codes carried in S_OPCODE_LOGIN_RESULT.
const (
	LoginOK          byte = 0
	LoginBadPassword byte = 1
	LoginBanned      byte = 2
	LoginAlreadyIn   byte = 3
	LoginInvalidName byte = 4
	LoginServerError byte = 5
)
