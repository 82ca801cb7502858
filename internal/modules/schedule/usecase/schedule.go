package usecase

import (
	"context"
	"fmt"

	"dayplanner/internal/modules/schedule/domain"
	scheduledto "dayplanner/internal/modules/schedule/dto"
	schedulein "dayplanner/internal/modules/schedule/port/in"
	"dayplanner/internal/modules/schedule/service"
	"dayplanner/internal/platform/clock"
	apperrors "dayplanner/internal/platform/errors"
)

// HeadingLayout formats the day heading shown above the slots, e.g. "Saturday, October 17".
const HeadingLayout = "Monday, January 2"

type Interactor struct {
	store  *service.ScheduleStore
	clock  clock.Clock
	window domain.Window
}

func NewInteractor(store *service.ScheduleStore, clock clock.Clock, window domain.Window) schedulein.Usecase {
	return &Interactor{store: store, clock: clock, window: window}
}

func (i *Interactor) Board(ctx context.Context) (scheduledto.BoardOutput, error) {
	sched, err := i.store.Load(ctx)
	if err != nil {
		return scheduledto.BoardOutput{}, err
	}
	return i.board(sched), nil
}

func (i *Interactor) Save(ctx context.Context, input scheduledto.SaveInput) (scheduledto.SaveOutput, error) {
	hour, err := i.resolve(input.SlotKey)
	if err != nil {
		return scheduledto.SaveOutput{}, err
	}
	change, err := i.store.SetEntry(ctx, input.SlotKey, input.Text)
	if err != nil {
		return scheduledto.SaveOutput{}, err
	}
	return scheduledto.SaveOutput{
		SlotKey:     input.SlotKey,
		Hour:        hour,
		Change:      string(change),
		LastUpdated: i.store.Snapshot().LastUpdated,
	}, nil
}

func (i *Interactor) Entry(ctx context.Context, slotKey string) (scheduledto.EntryOutput, error) {
	hour, err := i.resolve(slotKey)
	if err != nil {
		return scheduledto.EntryOutput{}, err
	}
	if _, err := i.store.Load(ctx); err != nil {
		return scheduledto.EntryOutput{}, err
	}
	text, found := i.store.GetEntry(slotKey)
	return scheduledto.EntryOutput{SlotKey: slotKey, Hour: hour, Label: domain.Label(hour), Text: text, Found: found}, nil
}

func (i *Interactor) Reset(ctx context.Context) (scheduledto.BoardOutput, error) {
	sched, err := i.store.Reset(ctx)
	if err != nil {
		return scheduledto.BoardOutput{}, err
	}
	return i.board(sched), nil
}

// KeyForHour maps an hour inside the work window to its slot key.
func (i *Interactor) KeyForHour(hour int) (string, error) {
	key := domain.SlotKey(hour)
	if _, err := i.resolve(key); err != nil {
		return "", err
	}
	return key, nil
}

func (i *Interactor) resolve(slotKey string) (int, error) {
	hour, err := domain.ParseSlotKey(slotKey)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrInvalidSlotKey, err)
	}
	if !i.window.Contains(hour) {
		return 0, fmt.Errorf("%w: %s not in %d..%d", apperrors.ErrSlotOutsideWindow, slotKey, i.window.Start, i.window.End)
	}
	return hour, nil
}

// board classifies every slot once against the current hour; it is not re-evaluated later.
func (i *Interactor) board(sched domain.Schedule) scheduledto.BoardOutput {
	now := i.clock.Now()
	current := now.Hour()
	hours := i.window.Hours()
	out := scheduledto.BoardOutput{
		Heading:     now.Format(HeadingLayout),
		Day:         now,
		CurrentHour: current,
		LastUpdated: sched.LastUpdated,
		Slots:       make([]scheduledto.SlotOutput, 0, len(hours)),
	}
	for _, h := range hours {
		key := domain.SlotKey(h)
		text, ok := sched.Get(key)
		out.Slots = append(out.Slots, scheduledto.SlotOutput{
			Key:     key,
			Hour:    h,
			Label:   domain.Label(h),
			Text:    text,
			HasText: ok,
			Phase:   string(domain.Classify(h, current)),
		})
	}
	return out
}
