package cmd

import (
	"errors"
	"log"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
	"github.com/hiremind/hiremind-cli/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "hiremind-cli"

type Config struct {
	APIURL    string        `mapstructure:"api-url"`
	UserAgent string        `mapstructure:"user-agent"`
	Upload    *UploadConfig `mapstructure:"upload"`
	Match     *MatchConfig  `mapstructure:"match"`
}

type UploadConfig struct {
	MaxSizeMB int `mapstructure:"max-size-mb"`
}

// MatchConfig is the job description form as written in the configuration
// file, plus the result limit.
type MatchConfig struct {
	Title        string   `mapstructure:"title"`
	Company      string   `mapstructure:"company"`
	Description  string   `mapstructure:"description"`
	Requirements []string `mapstructure:"requirements"`
	Skills       []string `mapstructure:"skills"`
	Experience   string   `mapstructure:"experience"`
	Location     string   `mapstructure:"location"`
	Salary       string   `mapstructure:"salary"`
	TopN         int      `mapstructure:"top-n"`
}

// JobDescription converts the config section into the wire value object.
func (m *MatchConfig) JobDescription() *hiremind.JobDescription {
	return &hiremind.JobDescription{
		Title:        m.Title,
		Company:      m.Company,
		Description:  m.Description,
		Requirements: m.Requirements,
		Skills:       m.Skills,
		Experience:   m.Experience,
		Location:     m.Location,
		Salary:       m.Salary,
	}
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hiremind-cli uploads resumes to the HireMind service and matches candidates against job descriptions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-url", "HIREMIND_API_URL"); err != nil {
		log.Fatalf("binding HIREMIND_API_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiremind.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the HireMind API (default http://localhost:8000)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("hiremind")
	}

	// The config file is optional: every setting has a flag, an env binding
	// or a default. A file that exists but does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	if config.APIURL == "" {
		config.APIURL = viper.GetString("api-url")
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return l
}

func newClient(config *Config, l *zap.Logger) *hiremind.Client {
	client := hiremind.New(l, config.APIURL)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	return client
}
