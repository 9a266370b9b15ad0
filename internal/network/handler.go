package network

import "net"

// Messenger é a visão que a lógica de jogo tem de um cliente conectado:
// um destino de mensagens de saída e um endereço para logs. A lógica de
// sessão nunca toca a conexão WebSocket diretamente; tudo passa pelo canal
// de envio, que é consumido pela goroutine writeLoop do cliente.
//
// A interface também permite que os testes da camada de sessão usem clientes
// falsos com um canal bufferizado, sem subir servidor nenhum.
type Messenger interface {
	Send() chan<- any
	RemoteAddr() net.Addr
}

// EventHandler é a interface que conecta a camada de rede com a lógica do
// jogo. Os três métodos são SEMPRE chamados pela goroutine do Hub, um por
// vez: é essa serialização que dispensa locks na camada de sessão.
type EventHandler interface {
	// OnConnect é chamado quando um novo cliente completa o upgrade.
	OnConnect(c Messenger)

	// OnDisconnect é chamado quando um cliente sai (limpo ou abrupto).
	OnDisconnect(c Messenger)

	// OnMessage é chamado para cada mensagem bem formada recebida.
	OnMessage(c Messenger, msg Message)
}
