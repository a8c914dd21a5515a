package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const ssmPrefix = "/svitloe/prod/"

// Config is the process configuration, validated once at start. In non-dev
// mode secrets left empty in the environment are resolved from AWS SSM
// Parameter Store.
type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	DBPath string `envconfig:"DB_PATH" default:"data/svitloe.db"`

	// PollInterval drives the monitor, schedule-refresh, and reminder loops.
	// The reminder windows in internal/schedule are sized to the 7m default;
	// they must change together with it.
	PollInterval    time.Duration `envconfig:"POLL_INTERVAL" default:"7m"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
	StatusesTTL     time.Duration `envconfig:"STATUSES_TTL" default:"720h"`

	ScheduleGroupID string `envconfig:"SCHEDULE_GROUP_ID" default:"2.2"`

	TelegramToken   string  `envconfig:"TELEGRAM_TOKEN"`
	TelegramChatIDs []int64 `envconfig:"TELEGRAM_CHAT_IDS" required:"true"`

	TuyaHost      string `envconfig:"TUYA_HOST" default:"https://openapi.tuyaeu.com"`
	TuyaAccessKey string `envconfig:"TUYA_ACCESS_KEY" required:"true"`
	TuyaSecretKey string `envconfig:"TUYA_SECRET_KEY"`
	TuyaDeviceID  string `envconfig:"TUYA_DEVICE_ID" required:"true"`

	ScheduleAPIURL string `envconfig:"SCHEDULE_API_URL" default:"https://api.loe.lviv.ua"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	CalendarID              string `envconfig:"CALENDAR_ID"`
	CalendarCredentialsPath string `envconfig:"CALENDAR_CREDENTIALS_PATH"`
}

func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if !res.Dev {
		if err := res.resolveSecrets(ctx); err != nil {
			return nil, err
		}
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}
	if res.TuyaSecretKey == "" {
		return nil, errors.New("tuya secret key is required")
	}

	return res, nil
}

// CalendarEnabled reports whether Google Calendar sync is configured.
func (c *Config) CalendarEnabled() bool {
	return c.CalendarID != "" && c.CalendarCredentialsPath != ""
}

func (c *Config) resolveSecrets(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	client := ssm.NewFromConfig(cfg)

	secrets := []struct {
		name  string
		field *string
	}{
		{"telegram-token", &c.TelegramToken},
		{"tuya-secret-key", &c.TuyaSecretKey},
		{"gemini-api-key", &c.GeminiAPIKey},
	}
	for _, s := range secrets {
		if *s.field != "" {
			continue
		}
		value, err := getSSMParameter(ctx, client, ssmPrefix+s.name)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", s.name, err)
		}
		*s.field = value
	}

	return nil
}

func getSSMParameter(ctx context.Context, client *ssm.Client, name string) (string, error) {
	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM parameter: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM parameter not found")
	}

	return *param.Parameter.Value, nil
}
