package client

import (
	"github.com/thangpham393/chinese-vocabulary-learning/internal/config"
)

type Clients struct {
	*GeminiAPI
}

func InitClients(cfg config.GeminiConfig) Clients {
	return Clients{
		GeminiAPI: NewGeminiAPI(cfg),
	}
}
