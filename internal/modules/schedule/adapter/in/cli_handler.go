package in

import (
	"context"

	scheduledto "dayplanner/internal/modules/schedule/dto"
	schedulein "dayplanner/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Board(ctx context.Context) (scheduledto.BoardOutput, error) {
	return h.usecase.Board(ctx)
}

// OnSave is the command the rendering boundary invokes when a slot is saved.
func (h CLIHandler) OnSave(ctx context.Context, slotKey, text string) (scheduledto.SaveOutput, error) {
	return h.usecase.Save(ctx, scheduledto.SaveInput{SlotKey: slotKey, Text: text})
}

func (h CLIHandler) SaveHour(ctx context.Context, hour int, text string) (scheduledto.SaveOutput, error) {
	key, err := h.usecase.KeyForHour(hour)
	if err != nil {
		return scheduledto.SaveOutput{}, err
	}
	return h.OnSave(ctx, key, text)
}

func (h CLIHandler) EntryHour(ctx context.Context, hour int) (scheduledto.EntryOutput, error) {
	key, err := h.usecase.KeyForHour(hour)
	if err != nil {
		return scheduledto.EntryOutput{}, err
	}
	return h.usecase.Entry(ctx, key)
}

func (h CLIHandler) Reset(ctx context.Context) (scheduledto.BoardOutput, error) {
	return h.usecase.Reset(ctx)
}
