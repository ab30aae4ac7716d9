package haccp

import (
	"strings"

	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

// ResolveRecipients picks who is notified about an alert in facilityID.
//
// A user is a candidate when active, subscribed to at least one channel, and
// either scoped to all facilities or homed at facilityID. Email targets keep
// first-seen order and collapse duplicates by trimmed, case-insensitive
// address. Chat is a single flag since chat alerts go to one shared
// destination.
func ResolveRecipients(facilityID string, users []models.User) models.Recipients {
	recipients := models.Recipients{EmailTargets: []string{}}
	seen := make(map[string]struct{})

	for _, u := range users {
		if !u.IsActive() || !(u.EmailAlerts || u.TelegramAlerts) {
			continue
		}
		if !u.AllFacilitiesAlerts && u.FacilityID != facilityID {
			continue
		}

		if u.TelegramAlerts {
			recipients.ChatEligible = true
		}

		if !u.EmailAlerts {
			continue
		}
		address := strings.TrimSpace(u.Email)
		if !strings.Contains(address, "@") {
			continue
		}
		key := strings.ToLower(address)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		recipients.EmailTargets = append(recipients.EmailTargets, address)
	}

	return recipients
}
