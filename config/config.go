package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SimulatorConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
}

var once sync.Once
var config *SimulatorConfig

func GetSimulatorConfig() *SimulatorConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalln(err)
		}
		config = &SimulatorConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
	})

	return config
}
