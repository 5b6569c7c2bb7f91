// @title Floor Finder Jury API
// @version 1.0
// @description Backend API for the floor plan rooms and the jury rating tool

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/frontiertower/floorfinder-sub000/docs"

	"github.com/frontiertower/floorfinder-sub000/api"
	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	// A missing .env is fine outside local development
	_ = godotenv.Load()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	logging.BootstrapLogger(viper.GetString("server.logLevel"))

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
