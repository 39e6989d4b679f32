package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/mailbox-postage/internal/config"
	"github.com/eugenenazirov/mailbox-postage/internal/mailbox"
	"github.com/eugenenazirov/mailbox-postage/internal/postage"
)

// App encapsulates the application dependencies.
type App struct {
	mailbox *mailbox.Mailbox
	logger  *zap.Logger
	offered int
}

// New builds every configured mail item and offers it to a fresh mailbox.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	box := mailbox.New(mailbox.WithLogger(logger))

	for i, spec := range cfg.Items {
		item, err := postage.New(spec)
		if err != nil {
			return nil, fmt.Errorf("build mail item %d: %w", i, err)
		}
		box.AddMailItem(item)
	}

	return &App{
		mailbox: box,
		logger:  logger,
		offered: len(cfg.Items),
	}, nil
}

// Run writes the mailbox report to out.
func (a *App) Run(out io.Writer) error {
	a.logger.Info("mailbox ready",
		zap.Int("offered", a.offered),
		zap.Int("accepted", a.mailbox.Len()),
		zap.Float64("total_postage", a.mailbox.Stamp()),
	)

	if err := a.mailbox.Display(out); err != nil {
		return fmt.Errorf("display mailbox: %w", err)
	}
	return nil
}

// Mailbox returns the populated mailbox.
func (a *App) Mailbox() *mailbox.Mailbox {
	return a.mailbox
}
