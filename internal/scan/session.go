package scan

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/qrbox/internal/capture"
)

// ErrAlreadyRunning сессия уже запущена
var ErrAlreadyRunning = errors.New("scan session is already running")

// Decoder определяет декодирующую часть remote codec клиента
type Decoder interface {
	// Decode возвращает текст QR кода или qrapi.ErrNoQRFound
	Decode(ctx context.Context, imageData []byte) (string, error)
}

// Config параметры сканирующей сессии
type Config struct {
	// DisplaySize возвращает текущий отображаемый размер (ширина, высота).
	// Опрашивается на каждом tick: отображение может менять размер
	// независимо от нативного разрешения источника.
	DisplaySize func() (int, int)

	// TickInterval период опроса кадров
	TickInterval time.Duration

	// SettleDelay пауза перед первым tick после старта источника
	SettleDelay time.Duration

	// CropFraction доля меньшей стороны кадра под область захвата.
	// Ноль — выбирается по ширине отображения (breakpoint).
	CropFraction float64
}

// Session владеет всем состоянием цикла сканирования: источником кадров,
// флагами found/inFlight/running и таймером. Никакого глобального состояния:
// сессию явно передают тому, кто собирает UI.
type Session struct {
	source    capture.FrameSource
	decoder   Decoder
	logger    *slog.Logger
	onResult  func(data string)
	onOverlay func(Overlay)
	cancel    context.CancelFunc
	cfg       Config

	mu       sync.Mutex
	found    bool
	inFlight bool
	running  bool
}

// NewSession создает сканирующую сессию.
// onResult вызывается ровно один раз при первом успешном декодировании.
// onOverlay (может быть nil) получает геометрию рамки на каждом tick —
// это обратная связь для пользователя, на корректность она не влияет.
func NewSession(source capture.FrameSource, decoder Decoder, cfg Config, logger *slog.Logger, onResult func(string), onOverlay func(Overlay)) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 500 * time.Millisecond
	}
	if cfg.DisplaySize == nil {
		cfg.DisplaySize = func() (int, int) { return 0, 0 }
	}

	return &Session{
		source:    source,
		decoder:   decoder,
		cfg:       cfg,
		logger:    logger,
		onResult:  onResult,
		onOverlay: onOverlay,
	}
}

// Start запускает периодический опрос кадров.
// Первый tick откладывается на SettleDelay, чтобы источник успел выйти
// на стабильный размер кадра.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.found = false
	s.inFlight = false

	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	go s.loop(ctx)
	return nil
}

// Stop останавливает опрос и освобождает источник кадров.
// Идемпотентен: повторный вызов и вызов без Start безопасны.
// Запрос, оставшийся в полете, завершится как безвредный no-op:
// его результат отбрасывается по отмененному контексту.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.running = false
	s.mu.Unlock()

	return s.source.Close()
}

// Running сообщает активен ли таймер опроса
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Found сообщает был ли QR успешно декодирован в этой сессии
func (s *Session) Found() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found
}

// loop тело таймера: settle delay, затем tick с фиксированным периодом
func (s *Session) loop(ctx context.Context) {
	if s.cfg.SettleDelay > 0 {
		select {
		case <-time.After(s.cfg.SettleDelay):
		case <-ctx.Done():
			return
		}
	}

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick один проход цикла: кадр -> вырез -> рамка -> запрос.
// Пропускается целиком если QR уже найден, запрос в полете или
// кадра с пригодными размерами еще нет. Это и есть backpressure:
// больше одного запроса в полете не бывает.
func (s *Session) tick(ctx context.Context) {
	s.mu.Lock()
	if s.found || s.inFlight {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	frame, err := s.source.Frame(ctx)
	if err != nil {
		// Кадра нет — молча перевзводимся на следующий tick
		return
	}

	bounds := frame.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	displayW, displayH := s.cfg.DisplaySize()

	fraction := s.cfg.CropFraction
	if fraction <= 0 {
		fraction = capture.CropFraction(displayW)
	}

	cropRect := capture.CenterCropRect(bounds, fraction)
	cropImg := capture.CenterCrop(frame, fraction)

	imageData, err := capture.EncodePNG(cropImg)
	if err != nil {
		s.logger.Warn("failed to encode frame crop", "error", err)
		return
	}

	s.mu.Lock()
	if s.found || s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	// Запрос уходит в фоне: рамка ниже не задерживает декодирование
	go s.decode(ctx, imageData)

	if s.onOverlay != nil && displayW > 0 && displayH > 0 {
		s.onOverlay(BuildOverlay(bounds.Dx(), bounds.Dy(), displayW, displayH, cropRect))
	}
}

// decode отправляет вырез на remote decode endpoint и разбирает исход.
// Промах (QR не найден) и ошибка транспорта здесь неразличимы по действию:
// следующий tick получает право на новый запрос. Наружу transient промахи
// не всплывают.
func (s *Session) decode(ctx context.Context, imageData []byte) {
	data, err := s.decoder.Decode(ctx, imageData)

	s.mu.Lock()

	// Сессию остановили пока запрос был в полете: результат отбрасываем
	if ctx.Err() != nil {
		s.inFlight = false
		s.mu.Unlock()
		return
	}

	if err != nil || data == "" {
		s.inFlight = false
		s.mu.Unlock()
		return
	}

	s.found = true
	s.mu.Unlock()

	if s.onResult != nil {
		s.onResult(data)
	}

	// Успех терминален для сессии: останавливаем камеру и таймер
	if err := s.Stop(); err != nil {
		s.logger.Warn("failed to stop scan session", "error", err)
	}
}
