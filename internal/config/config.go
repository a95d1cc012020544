// Package config предоставляет структуры и функцию для загрузки конфига
// из переменных окружения.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultModels встроенный упорядоченный список бесплатных моделей,
// используемый при пустом OPENROUTER_MODEL_LIST.
var defaultModels = []string{
	"meta-llama/llama-3.3-70b-instruct:free",
	"google/gemma-3-27b:free",
	"google/gemma-3-12b:free",
	"mistralai/mistral-7b-instruct:free",
	"deepseek/deepseek-r1-distill-llama-70b:free",
	"nousresearch/hermes-3-405b:free",
	"meta-llama/llama-3.2-3b-instruct:free",
	"alibaba/tongyi-deepresearch-30b-a3b:free",
}

// Config общая структура для хранения настроек
type Config struct {
	Env             string `env:"APP_ENV" env-default:"local"`
	LicenseFilePath string `env:"LICENSE_FILE_PATH" env-default:"licenses.json"`
	HTTPServer
	OpenRouter
	Razorpay
	FreeLicenseEmails string `env:"FREE_LICENSE_EMAILS"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `env:"HTTP_TIMEOUT" env-default:"60s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
}

// OpenRouter структура для настройки клиента генерации текста
type OpenRouter struct {
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY" env-required:"true"`
	OpenRouterModelList string `env:"OPENROUTER_MODEL_LIST"`
}

// Razorpay структура для настройки платёжного провайдера.
// Пустые ключи означают, что провайдер не настроен — платёжные
// эндпоинты будут отвечать ошибкой конфигурации.
type Razorpay struct {
	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET"`
}

// MustLoad функция для загрузки конфига из переменных окружения,
// завершает процесс при отсутствии обязательных значений
func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// Models возвращает упорядоченный список моделей: из переменной
// окружения через запятую или встроенный список по умолчанию.
func (c *Config) Models() []string {
	return splitList(c.OpenRouterModelList, defaultModels)
}

// FreeEmails возвращает список бесплатных email из конфигурации.
func (c *Config) FreeEmails() []string {
	return splitList(c.FreeLicenseEmails, nil)
}

// PaymentConfigured сообщает, заданы ли оба ключа Razorpay.
func (c *Config) PaymentConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func splitList(raw string, fallback []string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"LicenseFilePath: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"OpenRouter:\n"+
			"  Models: %s\n"+
			"Razorpay:\n"+
			"  KeyID: %s\n"+
			"FreeLicenseEmails: %s\n",
		c.Env,
		c.LicenseFilePath,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		strings.Join(c.Models(), ", "),
		c.RazorpayKeyID,
		c.FreeLicenseEmails,
	)
}
