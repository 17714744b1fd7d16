package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq creates the task client only when Redis answered InitRedis.
func InitAsynq(addr string) {
	if RedisClient == nil || addr == "" {
		log.Println("⚠️ Redis not available. Leads will be dispatched in-process.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: addr})
	log.Println("✅ Asynq Client initialized successfully")
}

func CloseAsynq() error {
	if AsynqClient == nil {
		return nil
	}
	return AsynqClient.Close()
}
