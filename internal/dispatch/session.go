package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrQuit is returned by a Prompter when the user leaves the application
	ErrQuit = errors.New("quit")
	// ErrBack is returned by a Prompter when the user backs out of a submenu
	ErrBack = errors.New("back")
)

// Prompter collects the user's choices
type Prompter interface {
	SelectCategory(ctx context.Context) (Category, error)
	SelectCommand(ctx context.Context, category Category) (Command, error)
	CollectArgs(ctx context.Context, cmd Command) (Args, error)
}

// Presenter shows results
type Presenter interface {
	Present(res Result)
}

// Session is the interactive menu loop
type Session struct {
	dispatcher *Dispatcher
	prompter   Prompter
	presenter  Presenter
}

// NewSession creates a menu loop over dispatcher
func NewSession(dispatcher *Dispatcher, prompter Prompter, presenter Presenter) *Session {
	return &Session{dispatcher: dispatcher, prompter: prompter, presenter: presenter}
}

// Run presents categories, then actions, then argument prompts, dispatches the
// chosen command and presents its result, until the user quits or ctx is
// done. The data store is closed before Run returns.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := s.dispatcher.Store().Close(); closeErr != nil {
			slog.Error("failed to close data store", "error", closeErr)
			if err == nil {
				err = fmt.Errorf("failed to close data store: %w", closeErr)
			}
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		cmd, args, err := s.next(ctx)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrBack):
			continue
		case err != nil:
			return err
		}

		res := s.dispatcher.Dispatch(ctx, cmd, args)
		s.presenter.Present(res)
		if cmd == CmdQuit {
			return nil
		}
	}
}

// next walks the prompts for one command
func (s *Session) next(ctx context.Context) (Command, Args, error) {
	category, err := s.prompter.SelectCategory(ctx)
	if err != nil {
		return 0, Args{}, err
	}

	var cmd Command
	switch category {
	case CategoryQuit:
		return CmdQuit, Args{}, nil
	case CategoryHelp:
		return CmdHelp, Args{}, nil
	default:
		cmd, err = s.prompter.SelectCommand(ctx, category)
		if err != nil {
			return 0, Args{}, err
		}
	}

	args, err := s.prompter.CollectArgs(ctx, cmd)
	if err != nil {
		return 0, Args{}, err
	}
	return cmd, args, nil
}
