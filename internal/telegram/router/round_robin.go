package router

import (
	"sync/atomic"

	"telegram-bulk-checker/internal/ports"
)

// RoundRobinStrategy распределяет запросы по живым клиентам по кругу.
type RoundRobinStrategy struct {
	next atomic.Uint32
}

// NewRoundRobinStrategy создает новую Round Robin стратегию.
func NewRoundRobinStrategy() *RoundRobinStrategy {
	return &RoundRobinStrategy{}
}

// Next возвращает следующего клиента в списке, инкрементируя счетчик по кругу.
func (s *RoundRobinStrategy) Next(clients []ports.TelegramClient) (ports.TelegramClient, error) {
	if len(clients) == 0 {
		return nil, ErrNoHealthyClients
	}
	idx := s.next.Add(1) - 1
	return clients[idx%uint32(len(clients))], nil
}
