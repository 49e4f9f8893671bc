package consoles

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// zapConsole sends console messages to a zap logger, one info entry per message. The
// prefixes become the "scope" field.
type zapConsole struct {
	mutex    sync.Mutex
	logger   *zap.Logger
	prefixes []string
}

func NewZapConsole(logger *zap.Logger) Console {
	return &zapConsole{logger: logger}
}

func (z *zapConsole) Printf(format string, a ...any) {
	z.mutex.Lock()
	defer z.mutex.Unlock()

	msg := strings.TrimRight(fmt.Sprintf(format, a...), "\n")

	if len(z.prefixes) == 0 {
		z.logger.Info(msg)
	} else {
		z.logger.Info(msg, zap.String("scope", strings.TrimSpace(strings.Join(z.prefixes, ""))))
	}
}

func (z *zapConsole) PushPrefix(format string, a ...any) {
	z.mutex.Lock()
	defer z.mutex.Unlock()

	z.prefixes = append(z.prefixes, fmt.Sprintf(format, a...))
}

func (z *zapConsole) PopPrefix() {
	z.mutex.Lock()
	defer z.mutex.Unlock()

	z.prefixes = z.prefixes[:len(z.prefixes)-1]
}
