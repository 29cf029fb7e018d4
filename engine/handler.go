package engine

import (
	"errors"
	"strings"

	"github.com/himakhaitan/cmdkv-store/store"
	"go.uber.org/zap"
)

const (
	msgKeyRequired   = "key is required"
	msgValueRequired = "value is required"
	msgKeyNotFound   = "key not found"
)

// CommandHandler executes commands against a repository
type CommandHandler interface {
	Handle(cmd Command) Result
	HandleAll(cmds []Command) []Result
}

// Handler is stateless apart from its collaborators and may be shared by
// any number of goroutines.
type Handler struct {
	repo     store.Repository
	logger   *zap.Logger
	dispatch map[Type]func(Command) Result
}

var _ CommandHandler = (*Handler)(nil)

func NewHandler(repo store.Repository, logger *zap.Logger) *Handler {
	h := &Handler{
		repo:   repo,
		logger: logger,
	}
	h.dispatch = map[Type]func(Command) Result{
		Create:  h.create,
		Read:    h.read,
		ReadAll: h.readAll,
		Update:  h.update,
		Delete:  h.delete,
	}
	return h
}

// Handle validates cmd, runs it against the repository and reports the
// outcome. It never returns an error or panics on repository failures.
func (h *Handler) Handle(cmd Command) Result {
	fn, ok := h.dispatch[cmd.Type]
	if !ok {
		h.logger.Debug("Rejected command with unknown type", zap.Stringer("type", cmd.Type))
		return Failure("")
	}

	res := fn(cmd)
	h.logger.Debug("Handled command",
		zap.Stringer("type", cmd.Type),
		zap.Stringer("status", res.Status()),
		zap.String("error", res.ErrorMessage()),
	)
	return res
}

// HandleAll runs cmds in order and returns one result per command in the
// same order. A failing command does not stop the batch and earlier effects
// are not rolled back.
func (h *Handler) HandleAll(cmds []Command) []Result {
	results := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		results = append(results, h.Handle(cmd))
	}
	return results
}

func (h *Handler) create(cmd Command) Result {
	if isBlank(cmd.Key) {
		return Failure(msgKeyRequired)
	}
	if cmd.Value == nil {
		return Failure(msgValueRequired)
	}
	if err := h.repo.SetValue(*cmd.Key, *cmd.Value); err != nil {
		return h.fail(cmd, err)
	}
	return Success()
}

func (h *Handler) read(cmd Command) Result {
	if cmd.Key == nil {
		return Failure(msgKeyRequired)
	}
	value, err := h.repo.GetValue(*cmd.Key)
	if err != nil {
		return h.fail(cmd, err)
	}
	return SuccessWith(value)
}

func (h *Handler) readAll(Command) Result {
	return SuccessWith(h.repo.GetAllKeys())
}

func (h *Handler) update(cmd Command) Result {
	if isBlank(cmd.Key) {
		return Failure(msgKeyRequired)
	}
	if cmd.Value == nil {
		return Failure(msgValueRequired)
	}
	if err := h.repo.UpdateValue(*cmd.Key, *cmd.Value); err != nil {
		return h.fail(cmd, err)
	}
	return Success()
}

func (h *Handler) delete(cmd Command) Result {
	if cmd.Key == nil {
		return Failure(msgKeyRequired)
	}
	if err := h.repo.DeleteValue(*cmd.Key); err != nil {
		return h.fail(cmd, err)
	}
	return Success()
}

// fail maps a repository error to a Failure result
func (h *Handler) fail(cmd Command, err error) Result {
	if errors.Is(err, store.ErrKeyNotFound) {
		return Failure(msgKeyNotFound)
	}
	h.logger.Warn("Repository operation failed", zap.Stringer("type", cmd.Type), zap.Error(err))
	return Failure(err.Error())
}

func isBlank(key *string) bool {
	return key == nil || strings.TrimSpace(*key) == ""
}
