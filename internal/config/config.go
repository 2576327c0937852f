package config

import (
	"net/http"
	"time"
)

type MongoConfig struct {
	URL string
}

type RedisConfig struct {
	Addr string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}
