// Package events publica os eventos de ciclo de vida das partidas em um
// servidor NATS, para quem quiser observar o jogo de fora (dashboards,
// bots espectadores, coleta de estatísticas). A publicação é opcional:
// um *Publisher nil é um no-op seguro, então o resto do servidor chama os
// métodos sem se preocupar se o NATS foi configurado.
package events

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// Assuntos publicados. O payload é sempre um objeto JSON.
const (
	SubjectMatchStarted  = "duelo.match.started"
	SubjectRoundResolved = "duelo.match.round"
	SubjectMatchFinished = "duelo.match.finished"
)

type Publisher struct {
	nc *nats.Conn
}

// Connect abre a conexão com o NATS. Falha de conexão é erro do chamador
// decidir (o servidor sobe sem eventos se preferir).
func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url, nats.Name("duelo-server"))
	if err != nil {
		return nil, err
	}
	log.Printf("[events] connected to NATS at %s", url)
	return &Publisher{nc: nc}, nil
}

// Close drena e fecha a conexão. Seguro em nil.
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	p.nc.Drain()
}

// MatchStartedEvent marca a criação de uma partida.
type MatchStartedEvent struct {
	MatchID string   `json:"match_id"`
	Players []string `json:"players"`
}

// RoundResolvedEvent descreve uma rodada resolvida.
type RoundResolvedEvent struct {
	MatchID string   `json:"match_id"`
	Round   int      `json:"round"`
	Actions []string `json:"actions"`
	HP      []int    `json:"hp"`
}

// MatchFinishedEvent encerra uma partida. Winner vazio indica empate ou
// abandono sem vencedor.
type MatchFinishedEvent struct {
	MatchID string `json:"match_id"`
	Winner  string `json:"winner"`
	Draw    bool   `json:"draw"`
	Reason  string `json:"reason"`
}

func (p *Publisher) MatchStarted(ev MatchStartedEvent) {
	p.publish(SubjectMatchStarted, ev)
}

func (p *Publisher) RoundResolved(ev RoundResolvedEvent) {
	p.publish(SubjectRoundResolved, ev)
}

func (p *Publisher) MatchFinished(ev MatchFinishedEvent) {
	p.publish(SubjectMatchFinished, ev)
}

// publish serializa e publica sem bloquear o fluxo do jogo: erro de
// publicação vira log, nunca afeta a partida.
func (p *Publisher) publish(subject string, payload any) {
	if p == nil || p.nc == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[events] failed to marshal %s payload: %v", subject, err)
		return
	}
	if err := p.nc.Publish(subject, data); err != nil {
		log.Printf("[events] failed to publish on %s: %v", subject, err)
	}
}
