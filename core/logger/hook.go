package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook é um hook de escrita assíncrona de logs. As entries são colocadas
// em um channel com buffer e escritas nos writers por uma goroutine dedicada,
// para que I/O de arquivo lento não bloqueie o request handling.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters cria um async hook com múltiplos writers.
// bufferSize define o tamanho do buffer de entries (padrão 1000).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels retorna os níveis de log tratados por este hook
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire é chamado a cada entry nova. Não bloqueia: apenas envia a entry para o
// channel; se o buffer estiver cheio, a entry é descartada.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook já fechado: escreve direto nos writers como fallback
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Buffer cheio: descarta para não bloquear. Não dá para logar aqui
		// sem criar um loop.
	}

	return nil
}

// processEntries consome o channel e escreve as entries nos writers
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		data, err := h.format(entry)
		if err != nil {
			continue
		}

		for _, writer := range h.writers {
			if _, err := writer.Write(data); err != nil {
				// Segue para o próximo writer; logar aqui criaria um loop
				continue
			}
		}
	}
}

// format serializa a entry usando o formatter do logger dono dela
func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close fecha o hook e espera todas as entries pendentes serem escritas
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
