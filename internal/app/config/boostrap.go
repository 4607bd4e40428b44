package config

import (
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// StoreClose releases the response store, if it holds anything
	StoreClose func() error
}

func (b *Bootstrap) Shutdown() error {
	if b.StoreClose != nil {
		if err := b.StoreClose(); err != nil {
			return err
		}
		log.Println("Successfully closing response store")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
