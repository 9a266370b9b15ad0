package message

// Structs das mensagens no sentido cliente -> servidor. O protocolo é um
// objeto JSON plano por mensagem; o campo "type" já foi consumido pela camada
// de rede, então cada struct declara apenas os campos da sua variante.
// Campos ausentes ficam com zero value e cabe ao handler validar.

// Tipos de comando aceitos pelo servidor.
const (
	TypeName           = "name"
	TypeCreateRoom     = "create_room"
	TypeJoinRoom       = "join_room"
	TypeLeaveRoom      = "leave_room"
	TypeInvite         = "invite"
	TypeInviteResponse = "invite_response"
	TypeEnterRoom      = "enter_room"
	TypeSubmit         = "submit"
	TypeReset          = "reset"
	TypeChat           = "chat"
	TypeLobbyChat      = "lobby_chat"
)

// NameRequest é o handshake: o primeiro comando de toda conexão.
type NameRequest struct {
	Name string `json:"name"`
}

type JoinRoomRequest struct {
	RoomID string `json:"room_id"`
}

type InviteRequest struct {
	To string `json:"to"`
}

type InviteResponseRequest struct {
	From     string `json:"from"`
	Accepted bool   `json:"accepted"`
}

type SubmitRequest struct {
	Action string `json:"action"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
