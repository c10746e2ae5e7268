package game

// BroadcastGateway is the transport contract the engine consumes. The core
// never touches connections directly; it asks the gateway to manage room
// delivery groups and to deliver named events. Tests substitute a recording
// fake.
type BroadcastGateway interface {
	Join(roomID, participantID string)
	Leave(roomID, participantID string)
	ToParticipant(participantID, event string, payload any)
	ToRoom(roomID, event string, payload any)
}
