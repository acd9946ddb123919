package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		WorkDir  string
		Build    string

		SplashDelay      time.Duration
		DefaultFromEmail mail.Address
		SendgridApiKey   string
		RollbarToken     string

		Firebase   FirebaseConfig
		Enrollment EndpointConfig
		ParentAPI  EndpointConfig
	}

	// FirebaseConfig carries the document store / auth provider credentials.
	// All values come from the environment; nothing is hard-coded.
	FirebaseConfig struct {
		ProjectID       string
		WebApiKey       string
		CredentialsFile string
		AuthBaseURL     string
	}

	EndpointConfig struct {
		BaseURL string
		Timeout time.Duration
	}
)

func NewConfig(workDir string) *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "ChildGuard")
	v.SetDefault("build", "dev")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("splashDelay", 3*time.Second)
	v.SetDefault("firebaseAuthBaseURL", "https://identitytoolkit.googleapis.com")
	v.SetDefault("enrollmentTimeout", 5*time.Minute)
	v.SetDefault("parentApiTimeout", 30*time.Second)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.SetEnvPrefix("childguard")
	v.AutomaticEnv()

	conf := &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         env == "TEST",
		Env:              env,
		AppName:          v.GetString("appName"),
		WorkDir:          workDir,
		Build:            v.GetString("build"),
		SplashDelay:      v.GetDuration("splashDelay"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		Firebase: FirebaseConfig{
			ProjectID:       v.GetString("firebaseProjectID"),
			WebApiKey:       v.GetString("firebaseWebApiKey"),
			CredentialsFile: v.GetString("firebaseCredentialsFile"),
			AuthBaseURL:     v.GetString("firebaseAuthBaseURL"),
		},
		Enrollment: EndpointConfig{
			BaseURL: v.GetString("enrollmentBaseURL"),
			Timeout: v.GetDuration("enrollmentTimeout"),
		},
		ParentAPI: EndpointConfig{
			BaseURL: v.GetString("parentApiBaseURL"),
			Timeout: v.GetDuration("parentApiTimeout"),
		},
	}
	if env == "PROD" {
		conf.Debug = false
	}
	return conf
}

func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd: %v", err)
	}
	return wd
}
