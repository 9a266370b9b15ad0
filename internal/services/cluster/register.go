// Package cluster cuida da integração operacional do servidor: registro no
// Consul (opcional) e o endpoint HTTP de health check que o agente do Consul
// consulta. Nada aqui participa da lógica do jogo.
package cluster

import (
	"fmt"
	"os"

	consul "github.com/hashicorp/consul/api"
)

// RegisterService registra este processo no Consul com um health check HTTP.
// consulAddr vazio usa o DefaultConfig (variáveis CONSUL_* do ambiente).
//
// O hostname entra no ID do serviço para permitir várias instâncias do
// servidor registradas sob o mesmo nome lógico.
func RegisterService(consulAddr, serviceName string, servicePort, healthPort int) error {
	config := consul.DefaultConfig()
	if consulAddr != "" {
		config.Address = consulAddr
	}

	client, err := consul.NewClient(config)
	if err != nil {
		return fmt.Errorf("creating consul client: %w", err)
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		// Fallback caso a variável de ambiente não esteja setada.
		hostname, _ = os.Hostname()
	}
	serviceID := fmt.Sprintf("%s-%s", serviceName, hostname)

	registration := &consul.AgentServiceRegistration{
		ID:   serviceID,
		Name: serviceName,
		Port: servicePort,

		// O agente do Consul resolve o endereço do contêiner sozinho; só o
		// check precisa de um host explícito, e o hostname é resolvível por
		// DNS dentro da rede do compose.
		Check: &consul.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%d/health", hostname, healthPort),
			Timeout:  "5s",
			Interval: "10s",
			// Desregistra sozinho se ficar crítico por muito tempo.
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("registering service %q: %w", serviceID, err)
	}
	return nil
}
