package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the symposium CLI.
const Version = "0.1.0"

var (
	cfgFile  string // Path to config file
	logFile  string // Path to console output file
	noColour bool   // Turn off colour output
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "symposium",
	Short: "Dining-philosophers contention simulator",
	Long: `symposium simulates mutual-exclusion contention among philosophers
sharing a ring of chopsticks.

Use "symposium run" to seat the philosophers and start the simulation;
it runs until interrupted.`,
	Version: Version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.symposium.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write console output to file (default is stdout)")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".symposium") // name of config file (without extension)
	viper.AddConfigPath("$HOME")      // adding home directory as first search path
	viper.AutomaticEnv()              // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
