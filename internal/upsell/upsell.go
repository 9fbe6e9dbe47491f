// Package upsell implements the upgrade prompt shown for features that are
// only available in the paid variant.
package upsell

import (
	"context"
	"fmt"

	"github.com/stigoleg/safedot/internal/analytics"
)

// StoreURL is the store listing of the paid variant.
const StoreURL = "https://play.google.com/store/apps/details?id=com.aravi.dotpro"

// URLOpener opens a link on the device.
type URLOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// Dialog is the text of the upgrade prompt.
type Dialog struct {
	Title   string
	Message string
	Accept  string
	Decline string
}

// Flow drives the upgrade prompt.
type Flow struct {
	tracker   analytics.Tracker
	opener    URLOpener
	installID string
	locale    Locale
}

// NewFlow returns an upgrade flow reporting as installID from locale.
func NewFlow(tracker analytics.Tracker, opener URLOpener, installID string, locale Locale) *Flow {
	return &Flow{tracker: tracker, opener: opener, installID: installID, locale: locale}
}

// Offer returns the prompt for a locked feature.
func (f *Flow) Offer() Dialog {
	return Dialog{
		Title:   "Requires Upgrade",
		Message: "Customisation Center and more other features will be available only in the PRO version of the app.",
		Accept:  "Get Premium",
		Decline: "Never Mind",
	}
}

// Accept records the purchase intent and opens the store listing.
func (f *Flow) Accept(ctx context.Context) error {
	f.tracker.Track(ctx, analytics.EventLikelyPurchaser, map[string]string{
		"user_id":  f.installID,
		"language": f.locale.Language,
		"location": f.locale.Country,
	})
	if err := f.opener.OpenURL(ctx, StoreURL); err != nil {
		return fmt.Errorf("open store listing: %w", err)
	}
	return nil
}
