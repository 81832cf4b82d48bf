package cmd

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/slipstream-dev/hotlap/log"
	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/data"
	"github.com/slipstream-dev/hotlap/pkg/game"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

const envPrefix = "HOTLAP"

// rootCmd starts the ride when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "hotlap",
	Short: "Pseudo-3D first-person ride around a racing circuit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&config.CircuitFile, "circuit", "",
		"path to a YAML circuit definition (default: built-in circuit)")
	rootCmd.PersistentFlags().BoolVar(&config.Autopilot, "autopilot", false,
		"start with the autopilot engaged")
	rootCmd.PersistentFlags().IntVar(&config.Scale, "scale", 1,
		"window scale factor")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
}

// initConfig merges an optional hotlap.yaml and environment variables over
// flag defaults.
func initConfig() {
	viper.SetConfigName("hotlap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // missing file is fine

	_ = viper.BindPFlags(rootCmd.PersistentFlags())
	config.CircuitFile = viper.GetString("circuit")
	config.Autopilot = viper.GetBool("autopilot")
	config.Scale = viper.GetInt("scale")
	config.LogLevel = viper.GetString("log-level")
}

func run() error {
	log.Init(config.LogLevel)

	var (
		circuit *track.Circuit
		err     error
	)
	if config.CircuitFile != "" {
		circuit, err = data.LoadCircuit(config.CircuitFile)
		if err != nil {
			return err
		}
	} else {
		circuit = data.Monza()
	}
	log.Info("circuit loaded", zap.String("name", circuit.Name),
		zap.Int("corners", len(circuit.Corners)))

	app, err := game.NewApp(circuit, config.Default(), config.Autopilot)
	if err != nil {
		return err
	}

	scale := config.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(game.ScreenWidth*scale, game.ScreenHeight*scale)
	ebiten.SetWindowTitle("Hotlap - " + circuit.Name)
	return ebiten.RunGame(app)
}
