package app

import (
	"context"

	"github.com/grimportent/fronts/pkg/front"
)

// The cast, stakes, player-hook, and location lists are plain ordered
// strings edited by index. An out-of-range index means the line vanished
// under a concurrent edit and resolves the same way as a missing entity.

func editLine(list []string, i int, text string) error {
	if i < 0 || i >= len(list) {
		return ErrVanished
	}
	list[i] = text
	return nil
}

func removeLine(list []string, i int) ([]string, error) {
	if i < 0 || i >= len(list) {
		return list, ErrVanished
	}
	return append(list[:i], list[i+1:]...), nil
}

func (s *Service) frontLine(ctx context.Context, frontID string, op func(f *front.Front) error) error {
	return s.mutate(ctx, func(doc *front.Document) error {
		f := doc.Front(frontID)
		if f == nil {
			return ErrVanished
		}
		return op(f)
	})
}

func (s *Service) dangerLine(ctx context.Context, dangerID string, op func(d *front.Danger) error) error {
	return s.mutate(ctx, func(doc *front.Document) error {
		_, d := doc.Danger(dangerID)
		if d == nil {
			return ErrVanished
		}
		return op(d)
	})
}

// AddCast appends a cast member to a front.
func (s *Service) AddCast(ctx context.Context, frontID, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		f.Cast = append(f.Cast, text)
		return nil
	})
}

// EditCast replaces the cast line at index i.
func (s *Service) EditCast(ctx context.Context, frontID string, i int, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		return editLine(f.Cast, i, text)
	})
}

// DeleteCast removes the cast line at index i. Line items delete without
// confirmation; only entity deletion prompts.
func (s *Service) DeleteCast(ctx context.Context, frontID string, i int) error {
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		var err error
		f.Cast, err = removeLine(f.Cast, i)
		return err
	})
}

// AddStake appends a stake question to a front.
func (s *Service) AddStake(ctx context.Context, frontID, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		f.Stakes = append(f.Stakes, text)
		return nil
	})
}

// EditStake replaces the stake at index i.
func (s *Service) EditStake(ctx context.Context, frontID string, i int, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		return editLine(f.Stakes, i, text)
	})
}

// DeleteStake removes the stake at index i.
func (s *Service) DeleteStake(ctx context.Context, frontID string, i int) error {
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		var err error
		f.Stakes, err = removeLine(f.Stakes, i)
		return err
	})
}

// AddHook appends a player hook to a front.
func (s *Service) AddHook(ctx context.Context, frontID, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		f.PlayerHooks = append(f.PlayerHooks, text)
		return nil
	})
}

// EditHook replaces the player hook at index i.
func (s *Service) EditHook(ctx context.Context, frontID string, i int, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		return editLine(f.PlayerHooks, i, text)
	})
}

// DeleteHook removes the player hook at index i.
func (s *Service) DeleteHook(ctx context.Context, frontID string, i int) error {
	return s.frontLine(ctx, frontID, func(f *front.Front) error {
		var err error
		f.PlayerHooks, err = removeLine(f.PlayerHooks, i)
		return err
	})
}

// AddLocation appends a location to a danger.
func (s *Service) AddLocation(ctx context.Context, dangerID, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		d.Locations = append(d.Locations, text)
		return nil
	})
}

// EditLocation replaces the location at index i.
func (s *Service) EditLocation(ctx context.Context, dangerID string, i int, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		return editLine(d.Locations, i, text)
	})
}

// DeleteLocation removes the location at index i.
func (s *Service) DeleteLocation(ctx context.Context, dangerID string, i int) error {
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		var err error
		d.Locations, err = removeLine(d.Locations, i)
		return err
	})
}
