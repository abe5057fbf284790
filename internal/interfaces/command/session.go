package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/warehouse-state/pkg/logger"
)

// Session lee comandos línea a línea de r y escribe cada respuesta en w.
type Session struct {
	ctrl *Controller
	log  *logger.Logger
}

// NewSession construye la sesión sobre el controller.
func NewSession(ctrl *Controller, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{ctrl: ctrl, log: log}
}

// Run procesa r hasta EOF. Las líneas vacías se ignoran; sólo los errores de lectura/escritura se devuelven.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	processed := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reply := s.ctrl.Execute(line)
		processed++
		if strings.HasPrefix(reply, ErrPrefix+":") {
			s.log.Debug().Str("command", line).Str("reply", reply).Msg("comando rechazado")
		}
		if reply == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, reply); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	s.log.Debug().Int("commands", processed).Msg("fin de la entrada")
	return nil
}
