package ws

// Типы событий, которые поступают в WS
const (
	TypeState      = "state"       // снапшот комнаты и доступа при подключении
	TypePeerJoined = "peer_joined" // пользователь подключился
	TypePeerLeft   = "peer_left"   // пользователь отключился
	TypeChat       = "chat"        // чат-сообщение (принятое AdmitSend)
	TypeChatAck    = "chat_ack"    // подтверждение отправки (НЕ сообщение)
	TypeError      = "error"       // отказ в отправке
)

// Коды в ErrorPayload
const (
	CodeAccessExpired  = "access_expired"
	CodeInvalidMessage = "invalid_message"
	CodeRateLimited    = "rate_limited"
	CodeRoomNotFound   = "room_not_found"
	CodeInternal       = "internal"
)

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type StatePayload struct {
	RoomID   string        `json:"room_id"`
	Name     string        `json:"name"`
	Visitors []string      `json:"visitors"`
	Online   []string      `json:"online"`
	Access   AccessPayload `json:"access"`
}

type AccessPayload struct {
	State        string `json:"state"`
	CanSend      bool   `json:"can_send"`
	IsRestricted bool   `json:"is_restricted"`
	RemainingMs  int64  `json:"remaining_ms"`
	FirstAccess  int64  `json:"first_access_unix,omitempty"`
}

type PeerEventPayload struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}

type ChatPayload struct {
	RoomID  string `json:"room_id"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`

	MsgID  string `json:"msg_id,omitempty"`
	TSUnix int64  `json:"ts_unix,omitempty"`
}

// для client: использует для снятия pending и дедупликации;
type ChatAckPayload struct {
	MsgID string `json:"msg_id"`
}

type ErrorPayload struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Access  *AccessPayload `json:"access,omitempty"`
}
