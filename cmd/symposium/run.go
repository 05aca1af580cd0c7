package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/synclore/symposium"
	"github.com/synclore/symposium/console"
	"github.com/synclore/symposium/tracing"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seat the philosophers and run the simulation",
	Long: `Seat the philosophers and run the simulation

Each philosopher alternates between thinking and eating; eating requires
both adjacent chopsticks, acquired in parity order to avoid deadlock.
The simulation runs until interrupted (Ctrl-C).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("philosophers", 5, "number of philosophers at the table")
	runCmd.Flags().Duration("think", 3*time.Second, "nominal thinking duration")
	runCmd.Flags().Duration("eat", 3*time.Second, "nominal eating duration")
	runCmd.Flags().Float64("jitter", 0, "phase duration randomisation fraction in [0,1)")
	runCmd.Flags().String("layout", "", "YAML file mapping seats to display names/colours")
	runCmd.Flags().String("journal-dir", "", "directory to write the per-run event journal to")
	runCmd.Flags().String("trace-file", "", "export OpenTelemetry spans to file ('-' for stdout)")

	_ = viper.BindPFlag("table.seats", runCmd.Flags().Lookup("philosophers"))
	_ = viper.BindPFlag("table.think", runCmd.Flags().Lookup("think"))
	_ = viper.BindPFlag("table.eat", runCmd.Flags().Lookup("eat"))
	_ = viper.BindPFlag("table.jitter", runCmd.Flags().Lookup("jitter"))
	_ = viper.BindPFlag("journal.baseURL", runCmd.Flags().Lookup("journal-dir"))
	_ = viper.BindPFlag("trace.outputFile", runCmd.Flags().Lookup("trace-file"))
}

func run(cmd *cobra.Command) error {
	config := symposium.DefaultConfig()
	config.Table.Seats = viper.GetInt("table.seats")
	config.Table.Think = viper.GetDuration("table.think")
	config.Table.Eat = viper.GetDuration("table.eat")
	config.Table.Jitter = viper.GetFloat64("table.jitter")
	if dir := viper.GetString("journal.baseURL"); dir != "" {
		config.Journal.Enabled = true
		config.Journal.BaseURL = dir
	}
	if traceFile := viper.GetString("trace.outputFile"); traceFile != "" {
		config.Trace.Enabled = true
		if traceFile != "-" {
			config.Trace.OutputFile = traceFile
		}
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if config.Trace.Enabled {
		if err := tracing.Init("symposium", Version, config.Trace.OutputFile); err != nil {
			log.Printf("tracing disabled: %v", err)
		}
	}

	var layout *console.Layout
	if layoutFile, _ := cmd.Flags().GetString("layout"); layoutFile != "" {
		var err error
		if layout, err = console.LoadLayout(layoutFile); err != nil {
			return err
		}
	}

	service, err := symposium.New(
		symposium.WithConfig(config),
		symposium.WithWriter(console.NewFile(logFile, !noColour)),
		symposium.WithLayout(layout),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runtime := service.Runtime()
	if err := runtime.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	runtime.Shutdown()
	return nil
}
