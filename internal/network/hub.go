package network

// clientMessage empacota uma mensagem com o cliente que a enviou.
// O Hub precisa de ambos para repassar ao EventHandler.
type clientMessage struct {
	client *Client
	msg    Message
}

// Hub mantém o conjunto de clientes ativos e roteia eventos para o handler.
//
// Todo o estado mutável do jogo é tocado apenas a partir do loop abaixo:
// as goroutines de leitura dos clientes apenas enfileiram nos canais. É o
// único ponto de serialização do servidor.
type Hub struct {
	// Clientes registrados. Acessado SOMENTE pela goroutine do Hub.
	clients map[*Client]bool

	// Canal para registrar novos clientes.
	register chan *Client

	// Canal para desregistrar clientes.
	unregister chan *Client

	// Canal de entrada: as goroutines readLoop dos clientes publicam aqui.
	incoming chan clientMessage

	// O handler da lógica do jogo que processa os eventos.
	handler EventHandler
}

// NewHub cria, inicializa e retorna um novo Hub.
func NewHub(handler EventHandler) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan clientMessage),
		handler:    handler,
	}
}

// Run roda o loop do Hub. Deve ser chamado em sua própria goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.handler.OnConnect(client)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				// Fechar o canal 'send' é o sinal para a writeLoop daquele
				// cliente parar. Precisa acontecer exatamente uma vez.
				close(client.send)
				h.handler.OnDisconnect(client)
			}

		case clientMsg := <-h.incoming:
			// O Hub não se importa com o conteúdo; delega para o jogo.
			h.handler.OnMessage(clientMsg.client, clientMsg.msg)
		}
	}
}
