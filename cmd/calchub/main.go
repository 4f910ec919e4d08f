// Package main provides the calchub CLI application entry point.
// calchub is a terminal calculator hub: a physical-style keypad, a catalog of
// calculators, and a small dashboard of favorites, history, notes and tasks.
package main

import (
	"fmt"
	"os"

	"github.com/abiosoft/ishell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"calchub/internal/logger"
	"calchub/internal/services"
	"calchub/internal/shell"
	"calchub/internal/version"
)

var (
	logLevel      string
	logFile       string
	testMode      bool
	versionDetail bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calchub",
	Short: "calchub - a calculator hub for the terminal",
	Long: `calchub bundles a tactile keypad calculator, a scientific calculator,
a base converter and a fraction solver with favorites, history, notes and tasks.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Long:  `Start the interactive calchub shell.`,
	Run:   runShell,
}

// batchCmd represents the batch command for non-interactive script execution
var batchCmd = &cobra.Command{
	Use:   "batch <script.calc>",
	Short: "Execute a .calc script file in batch mode",
	Long: `Execute a .calc script file directly without entering interactive mode.
Each line runs as if typed at the prompt; the first failing line stops the script.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of calchub.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionDetail {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	flags.BoolVar(&testMode, services.ConfigTestMode, false, "Run in deterministic test mode")
	flags.String(services.ConfigStore, "", "State store (memory|file|sqlite) [default: file]")
	flags.String(services.ConfigDataDir, "", "Directory for persisted state [default: ~/.config/calchub]")
	flags.String(services.ConfigTheme, "", "Color theme (default|dark|light|plain)")
	flags.Int(services.ConfigHistoryLimit, 0, "Maximum number of history entries")

	// Bind flags to viper; only flags that were set override the other layers.
	for _, name := range []string{
		"log-level", "log-file",
		services.ConfigTestMode, services.ConfigStore, services.ConfigDataDir,
		services.ConfigTheme, services.ConfigHistoryLimit,
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().BoolVar(&versionDetail, "detail", false, "Include commit, build date and platform")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting calchub", "version", version.GetVersion())

	if err := shell.InitializeServices(testMode); err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}
	defer closeStore()

	sh := ishell.New()
	sh.SetPrompt("calc> ")

	// Remove built-in commands so they reach the calchub registry
	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")
	sh.DeleteCmd("clear")

	if autocomplete, err := services.Lookup[*services.AutoCompleteService]("autocomplete"); err == nil {
		sh.CustomCompleter(autocomplete)
	}

	sh.Println(version.GetFormattedVersion())
	sh.Println("Type '\\help' for commands, '\\open math-basic' for the keypad, or '\\exit' to quit.")
	shell.HandleLine(sh, "\\home")

	sh.NotFound(shell.ProcessInput)
	sh.Run()
}

func runBatch(_ *cobra.Command, args []string) {
	scriptPath := args[0]
	logger.Info("Starting calchub batch mode", "version", version.GetVersion(), "script", scriptPath)

	if err := shell.ValidateScriptFile(scriptPath); err != nil {
		logger.Fatal("Script validation failed", "error", err)
	}
	if err := shell.InitializeServices(testMode); err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}

	err := shell.RunScript(scriptPath)
	closeStore()
	if err != nil {
		logger.Fatal("Script execution failed", "error", err)
	}
	logger.Info("Script executed successfully", "script", scriptPath)
}

func closeStore() {
	if err := shell.Shutdown(); err != nil {
		logger.Error("Failed to close store", "error", err)
	}
}
