package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// Alipay page-pay gateway
	AlipayAppID      string
	AlipayGateway    string
	AlipayReturnURL  string
	AlipayNotifyURL  string
	AlipayPrivateKey string // PEM-encoded RSA key; empty in development

	// Tencent Cloud SMS
	SmsSecretID   string
	SmsSecretKey  string
	SmsSdkAppID   string
	SmsTemplateID string
	SmsSignName   string
	SmsRegion     string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),

		AlipayAppID:      getEnv("ALIPAY_APP_ID", ""),
		AlipayGateway:    getEnv("ALIPAY_GATEWAY", "https://openapi.alipay.com/gateway.do"),
		AlipayReturnURL:  getEnv("ALIPAY_RETURN_URL", "https://d.huiqs.top/alipay/return"),
		AlipayNotifyURL:  getEnv("ALIPAY_NOTIFY_URL", "https://d.huiqs.top/alipay/notify"),
		AlipayPrivateKey: getEnv("ALIPAY_PRIVATE_KEY", ""),

		SmsSecretID:   getEnv("SMS_SECRET_ID", ""),
		SmsSecretKey:  getEnv("SMS_SECRET_KEY", ""),
		SmsSdkAppID:   getEnv("SMS_SDK_APP_ID", ""),
		SmsTemplateID: getEnv("SMS_TEMPLATE_ID", ""),
		SmsSignName:   getEnv("SMS_SIGN_NAME", ""),
		SmsRegion:     getEnv("SMS_REGION", "ap-guangzhou"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
