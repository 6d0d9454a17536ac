package service

import (
	"context"
	"log/slog"

	"github.com/causewayhq/causeway/internal/domain"
)

// LogCodeSender writes one-time codes to the log instead of delivering
// them. Stands in until a mail provider is wired up.
type LogCodeSender struct{}

func NewLogCodeSender() *LogCodeSender {
	return &LogCodeSender{}
}

func (s *LogCodeSender) Send(ctx context.Context, code domain.OneTimeCode) error {
	slog.InfoContext(
		ctx, "one-time code issued",
		slog.String("email", code.Email),
		slog.String("purpose", string(code.Purpose)),
		slog.String("code", code.Code),
		slog.String("module", "sender"),
	)
	return nil
}
