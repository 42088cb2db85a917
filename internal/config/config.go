package config

import "time"

// Config содержит настраиваемые параметры клиента.
// Конкретные значения интервалов и лимитов — подбор под UX, а не инварианты,
// поэтому все они вынесены сюда и перекрываются флагами.
type Config struct {
	// DecodeEndpoint URL remote decode endpoint (multipart POST)
	DecodeEndpoint string

	// EncodeEndpoint URL remote encode endpoint (GET с query параметрами)
	EncodeEndpoint string

	// TickInterval период опроса кадров в режиме непрерывного сканирования
	TickInterval time.Duration

	// SettleDelay пауза после старта источника кадров перед первым опросом,
	// чтобы источник успел выйти на стабильный размер кадра
	SettleDelay time.Duration

	// DedupeWindow окно подавления дубликатов в истории сканирований
	DedupeWindow time.Duration

	// MaxFileSize лимит размера загружаемого изображения в байтах
	MaxFileSize int64

	// ScanHistoryLimit максимум записей в истории сканирований
	ScanHistoryLimit int

	// GenHistoryLimit максимум записей в истории генераций
	GenHistoryLimit int
}

// LoadDefaults заполняет конфигурацию значениями по умолчанию
func (c *Config) LoadDefaults() {
	c.DecodeEndpoint = "https://api.qrserver.com/v1/read-qr-code/"
	c.EncodeEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	c.TickInterval = 500 * time.Millisecond
	c.SettleDelay = 800 * time.Millisecond
	c.DedupeWindow = 60 * time.Second
	c.MaxFileSize = 5 * 1024 * 1024
	c.ScanHistoryLimit = 20
	c.GenHistoryLimit = 50
}

// New возвращает конфигурацию с значениями по умолчанию
func New() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}
