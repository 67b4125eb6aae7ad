package app

import (
	"context"

	"github.com/grimportent/fronts/pkg/front"
)

// Grim portents and secrets are the lore entities inside a danger. Their
// text and membership are client-computed and pushed via the whole-document
// save; only the revealed/completed flips go through the server-side
// toggle endpoints (see app.go).

// AddPortent appends a grim portent to a danger's doom clock.
func (s *Service) AddPortent(ctx context.Context, dangerID, text string) (string, error) {
	text, err := requireText(text)
	if err != nil {
		return "", err
	}
	p := front.NewPortent(text)
	err = s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		d.GrimPortents = append(d.GrimPortents, p)
		return nil
	})
	return p.ID, err
}

// EditPortent replaces a portent's text.
func (s *Service) EditPortent(ctx context.Context, dangerID, portentID, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		p := d.Portent(portentID)
		if p == nil {
			return ErrVanished
		}
		p.Text = text
		return nil
	})
}

// DeletePortent removes a portent without confirmation.
func (s *Service) DeletePortent(ctx context.Context, dangerID, portentID string) error {
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		for i := range d.GrimPortents {
			if d.GrimPortents[i].ID == portentID {
				d.GrimPortents = append(d.GrimPortents[:i], d.GrimPortents[i+1:]...)
				return nil
			}
		}
		return ErrVanished
	})
}

// AddSecret appends an unrevealed secret worth the given XP.
func (s *Service) AddSecret(ctx context.Context, dangerID string, xp int, text string) (string, error) {
	text, err := requireText(text)
	if err != nil {
		return "", err
	}
	xp, err = front.ParseXP(xp)
	if err != nil {
		return "", err
	}
	secret := front.NewSecret(xp, text)
	err = s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		d.Secrets = append(d.Secrets, secret)
		return nil
	})
	return secret.ID, err
}

// EditSecret updates a secret's XP and text. The revealed state is not
// editable here; that belongs to the server-side toggle.
func (s *Service) EditSecret(ctx context.Context, dangerID, secretID string, xp int, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	xp, err = front.ParseXP(xp)
	if err != nil {
		return err
	}
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		secret := d.Secret(secretID)
		if secret == nil {
			return ErrVanished
		}
		secret.XP = xp
		secret.Text = text
		return nil
	})
}

// DeleteSecret removes a secret without confirmation.
func (s *Service) DeleteSecret(ctx context.Context, dangerID, secretID string) error {
	return s.dangerLine(ctx, dangerID, func(d *front.Danger) error {
		for i := range d.Secrets {
			if d.Secrets[i].ID == secretID {
				d.Secrets = append(d.Secrets[:i], d.Secrets[i+1:]...)
				return nil
			}
		}
		return ErrVanished
	})
}
