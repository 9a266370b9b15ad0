// Package duel implementa a resolução de rodadas do jogo: dois jogadores
// escolhem uma ação simultânea (attack, block, load, standby) e a rodada é
// resolvida de forma puramente determinística a partir do estado inicial.
// O pacote não faz I/O nenhum; quem orquestra partidas é internal/session.
package duel

// Action é uma das quatro ações que um jogador pode submeter por rodada.
type Action string

const (
	ActionAttack  Action = "attack"
	ActionBlock   Action = "block"
	ActionLoad    Action = "load"
	ActionStandby Action = "standby"
)

// ParseAction valida a string crua vinda do protocolo.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionAttack, ActionBlock, ActionLoad, ActionStandby:
		return Action(s), true
	}
	return "", false
}

const (
	// MaxHP é a vida inicial (e máxima) de um jogador.
	MaxHP = 3

	// MaxBlockPoints limita o recurso de bloqueio: gasto ao bloquear,
	// recuperado no standby.
	MaxBlockPoints = 3
)

// State é o estado de batalha de UM jogador dentro de uma partida.
// Invariantes: HP nunca sobe fora de um reset explícito; BlockPoints fica
// sempre em [0, MaxBlockPoints]; Loaded é um flip-flop simples.
type State struct {
	HP          int
	Loaded      bool
	BlockPoints int
}

// NewState retorna o estado inicial de batalha.
func NewState() State {
	return State{HP: MaxHP, Loaded: false, BlockPoints: MaxBlockPoints}
}

// Alive informa se o jogador ainda está de pé.
func (s State) Alive() bool { return s.HP > 0 }

// ResolveRound aplica as duas ações submetidas e retorna os dois estados
// resultantes. As DUAS resoluções leem o estado de INÍCIO de rodada: os
// efeitos só são combinados no retorno, então a ordem dos argumentos nunca
// altera o resultado (sem efeito duplo dependente de ordem).
//
// Regras, por ação do jogador:
//   - attack: se o atacante começou a rodada carregado, a carga é consumida
//     sempre; o oponente perde 1 de HP a menos que a ação dele seja block.
//     Atacar descarregado não tem efeito algum.
//   - block: gasta 1 ponto de bloqueio se houver (piso em 0). A proteção em
//     si vem da regra do attack, que olha a AÇÃO submetida do defensor.
//   - load: carrega a arma (idempotente).
//   - standby: recupera 1 ponto de bloqueio (teto em MaxBlockPoints).
func ResolveRound(p1, p2 State, act1, act2 Action) (State, State) {
	next1 := applyOwn(p1, act1)
	next2 := applyOwn(p2, act2)

	// Dano cruzado, calculado a partir dos estados de início de rodada.
	if act1 == ActionAttack && p1.Loaded && act2 != ActionBlock {
		next2.HP--
	}
	if act2 == ActionAttack && p2.Loaded && act1 != ActionBlock {
		next1.HP--
	}

	return next1, next2
}

// applyOwn aplica os efeitos da ação de um jogador sobre o próprio estado.
func applyOwn(s State, act Action) State {
	switch act {
	case ActionAttack:
		if s.Loaded {
			// A carga é consumida na tentativa, acerte ou não.
			s.Loaded = false
		}
	case ActionBlock:
		if s.BlockPoints > 0 {
			s.BlockPoints--
		}
	case ActionLoad:
		s.Loaded = true
	case ActionStandby:
		if s.BlockPoints < MaxBlockPoints {
			s.BlockPoints++
		}
	}
	return s
}

// Outcome é o veredito de uma rodada resolvida.
type Outcome int

const (
	// Ongoing: ninguém caiu, a partida continua.
	Ongoing Outcome = iota

	// Player1Wins / Player2Wins: apenas um jogador continua de pé.
	Player1Wins
	Player2Wins

	// Draw: os dois caíram na mesma rodada. O duplo nocaute é sempre
	// reportado como empate, nunca como vitória de um dos lados.
	Draw
)

// Judge avalia os dois estados pós-rodada e decide o veredito.
func Judge(p1, p2 State) Outcome {
	switch {
	case p1.Alive() && p2.Alive():
		return Ongoing
	case !p1.Alive() && !p2.Alive():
		return Draw
	case p1.Alive():
		return Player1Wins
	default:
		return Player2Wins
	}
}
