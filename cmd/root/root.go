package root

import (
	"fmt"
	"os"

	"github.com/Kirov7/CheeseDB"
	"github.com/Kirov7/CheeseDB/public"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	KeyDataFile      = public.ConfigKeyPrefix + ".dataFile"
	KeyRefreshOnSave = public.ConfigKeyPrefix + ".refreshOnSave"
	KeyMaxTraversal  = public.ConfigKeyPrefix + ".maxTraversal"
	KeySyncWrites    = public.ConfigKeyPrefix + ".syncWrites"
	KeyEnableLua     = public.ConfigKeyPrefix + ".enableLua"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "cheese",
	Short: "An ordered catalog of cheeses",
	Long:  `cheese keeps a catalog of cheeses ordered by brand and price, and saves it to a plain text file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	defaults := CheeseDB.DefaultOptions()
	viper.SetDefault(KeyDataFile, public.DefaultDataFile)
	viper.SetDefault(KeyRefreshOnSave, defaults.RefreshOnSave)
	viper.SetDefault(KeyMaxTraversal, defaults.MaxTraversal)
	viper.SetDefault(KeySyncWrites, defaults.SyncWrites)
	viper.SetDefault(KeyEnableLua, defaults.EnableLua)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "f", "", "Path of the configuration file in yaml, json and toml format (optional)")
	flags.StringP("data", "d", public.DefaultDataFile, "Default catalog file used by save and load")
	flags.Bool("refresh", defaults.RefreshOnSave, "Take a fresh traversal before every save (true/false)")
	flags.Int("max-traversal", defaults.MaxTraversal, "Maximum number of records a listing may capture, 0 for unbounded")

	_ = viper.BindPFlag(KeyDataFile, flags.Lookup("data"))
	_ = viper.BindPFlag(KeyRefreshOnSave, flags.Lookup("refresh"))
	_ = viper.BindPFlag(KeyMaxTraversal, flags.Lookup("max-traversal"))
}

func initConfig() error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to read configuration file: %s, please check whether the path is correct: %w", configFile, err)
	}
	return nil
}

// Options catalog options resolved from flags, config file and defaults
func Options() CheeseDB.Options {
	return CheeseDB.Options{
		MaxTraversal:  viper.GetInt(KeyMaxTraversal),
		RefreshOnSave: viper.GetBool(KeyRefreshOnSave),
		SyncWrites:    viper.GetBool(KeySyncWrites),
		EnableLua:     viper.GetBool(KeyEnableLua),
	}
}

func DataFile() string {
	return viper.GetString(KeyDataFile)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}
