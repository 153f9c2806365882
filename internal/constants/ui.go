package constants

import "time"

const (
	// RecentLogLimit caps how many care logs the Log Care page renders.
	RecentLogLimit = 10

	// BannerTimeout is how long a transient success banner stays visible
	// before auto-dismissing.
	BannerTimeout = 1500 * time.Millisecond

	// UpcomingWindowDays bounds the client-side "upcoming" classification:
	// an entry is upcoming when its due date falls within
	// [today, today+UpcomingWindowDays], endpoints inclusive.
	UpcomingWindowDays = 7

	// MinPasswordLength is enforced before a password change ever reaches
	// the network.
	MinPasswordLength = 6
)
