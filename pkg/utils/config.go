package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	IntaSend IntaSendConfig
	PayPal   PayPalConfig
	Mpesa    MpesaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret             string
	AccessExpiryHours  int
	RefreshExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type IntaSendConfig struct {
	PublishableKey string
	SecretKey      string
	BaseURL        string
}

type PayPalConfig struct {
	ClientID string
	Secret   string
	BaseURL  string
}

type MpesaConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	PassKey        string
	BaseURL        string
	CallbackURL    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	// The frontend has no re-login flow, so tokens are very long-lived.
	viper.SetDefault("JWT_ACCESS_EXPIRY_HOURS", 87600)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 87600)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("INTASEND_BASE_URL", "https://payment.intasend.com/api/v1")
	viper.SetDefault("PAYPAL_BASE_URL", "https://api-m.paypal.com")
	viper.SetDefault("MPESA_BASE_URL", "https://api.safaricom.co.ke")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			AccessExpiryHours:  viper.GetInt("JWT_ACCESS_EXPIRY_HOURS"),
			RefreshExpiryHours: viper.GetInt("JWT_REFRESH_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		IntaSend: IntaSendConfig{
			PublishableKey: viper.GetString("INTASEND_PUBLISHABLE_KEY"),
			SecretKey:      viper.GetString("INTASEND_SECRET_KEY"),
			BaseURL:        viper.GetString("INTASEND_BASE_URL"),
		},
		PayPal: PayPalConfig{
			ClientID: viper.GetString("PAYPAL_CLIENT_ID"),
			Secret:   viper.GetString("PAYPAL_SECRET"),
			BaseURL:  viper.GetString("PAYPAL_BASE_URL"),
		},
		Mpesa: MpesaConfig{
			ConsumerKey:    viper.GetString("MPESA_CONSUMER_KEY"),
			ConsumerSecret: viper.GetString("MPESA_CONSUMER_SECRET"),
			ShortCode:      viper.GetString("MPESA_SHORTCODE"),
			PassKey:        viper.GetString("MPESA_PASSKEY"),
			BaseURL:        viper.GetString("MPESA_BASE_URL"),
			CallbackURL:    viper.GetString("MPESA_CALLBACK_URL"),
		},
	}

	return config, nil
}
