package realtime

// Wire protocol: every frame in either direction is a JSON object with an
// event name and an optional payload.
const (
	// client -> server, announces the session wants live delivery
	EventRegister = "register"

	// server -> client
	EventMessageNew   = "message:new"
	EventMessageSent  = "message:sent"
	EventUnreadUpdate = "unread:update"
)

type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// inboundEnvelope keeps the payload raw; the server only ever inspects the
// event name of client frames.
type inboundEnvelope struct {
	Event string `json:"event"`
}
