package in

import (
	"context"

	"dayplanner/internal/modules/schedule/dto"
)

type Usecase interface {
	Board(ctx context.Context) (dto.BoardOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error)
	Entry(ctx context.Context, slotKey string) (dto.EntryOutput, error)
	Reset(ctx context.Context) (dto.BoardOutput, error)
	KeyForHour(hour int) (string, error)
}
