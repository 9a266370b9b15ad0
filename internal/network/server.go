package network

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Server é a estrutura principal do servidor de rede. Ele gerencia um Hub
// e o endpoint HTTP que promove conexões para WebSocket.
type Server struct {
	hub *Hub
}

// upgrader armazena as configurações para promover uma conexão HTTP para
// WebSocket. CheckOrigin liberado: o cliente é uma aplicação desktop, não
// um navegador, então a verificação de origem não se aplica.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewServer aceita um EventHandler e o injeta no Hub.
// Este é o ponto de injeção da lógica do jogo.
func NewServer(handler EventHandler) *Server {
	return &Server{
		hub: NewHub(handler),
	}
}

// wsHandler lida com a requisição HTTP e a promove para WebSocket.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[network] upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		hub:  s.hub,
		send: make(chan any, 256),
	}

	client.hub.register <- client

	go client.writeLoop()
	go client.readLoop()
}

// Listen inicia a goroutine do Hub e o servidor HTTP na rota /ws.
// Bloqueia até o listener falhar.
func (s *Server) Listen(address string) error {
	go s.hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)

	log.Printf("[network] listening on ws://%s/ws", address)
	return http.ListenAndServe(address, mux)
}
