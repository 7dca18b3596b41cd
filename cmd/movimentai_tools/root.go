package main

import (
	"github.com/spf13/cobra"
)

var (
	env        string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "movimentai_tools",
	Short: "Operator tools for the MovimentAI backend",
	Long: `movimentai_tools bundles small operator tasks.

  $ movimentai_tools hash-password s3cret                       # bcrypt hash for ADMIN_PASSWORD_HASH
  $ movimentai_tools template --days 3 --on Seg,Qua,Sex         # preview the fixed splits
  $ movimentai_tools provision --email a@b.com --name Ana       # create an account with a temp password
  $ movimentai_tools workout run --days 3 --on Seg,Qua,Sex      # run today's split in the terminal`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path to TOML config file")

	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(workoutCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
