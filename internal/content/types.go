// Package content holds the static collections published on the website and
// the calculations the public and admin pages derive from them.
package content

import "time"

// ActivityStatus is the progress state of an Activity.
type ActivityStatus string

// ActivityStatus values.
const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityOngoing   ActivityStatus = "ongoing"
	ActivityCompleted ActivityStatus = "completed"
)

// ActivityType classifies an Activity.
type ActivityType string

// ActivityType values.
const (
	ActivityInfrastructure ActivityType = "infrastructure"
	ActivityEducation      ActivityType = "education"
	ActivityHealthcare     ActivityType = "healthcare"
	ActivityWater          ActivityType = "water"
	ActivityCommunity      ActivityType = "community"
	ActivityEconomic       ActivityType = "economic"
)

// LeaderGroup separates association officers from resettlement coordinators.
type LeaderGroup string

// LeaderGroup values.
const (
	GroupAssociation  LeaderGroup = "association"
	GroupResettlement LeaderGroup = "resettlement"
)

// MediaType is the kind of a Media item.
type MediaType string

// MediaType values.
const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// ParseMediaType converts s into a MediaType.
func ParseMediaType(s string) (MediaType, bool) {
	switch t := MediaType(s); t {
	case MediaImage, MediaVideo, MediaDocument:
		return t, true
	default:
		return "", false
	}
}

// PledgeStatus is the state of a Pledge.
type PledgeStatus string

// PledgeStatus values.
const (
	PledgePending   PledgeStatus = "pending"
	PledgeFulfilled PledgeStatus = "fulfilled"
	PledgeCancelled PledgeStatus = "cancelled"
)

// Payam is an administrative region with its own resettlement fundraising target.
// Amounts are whole US dollars.
type Payam struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	RequestedAmount int64  `json:"requestedAmount"`
	RaisedAmount    int64  `json:"raisedAmount"`
	Description     string `json:"description"`
}

// Activity is a project carried out in a payam.
type Activity struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	PayamID     string         `json:"payamId,omitempty"`
	Description string         `json:"description"`
	Status      ActivityStatus `json:"status"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate,omitzero"`
	Budget      int64          `json:"budget,omitempty"`
	Type        ActivityType   `json:"type"`
}

// Leader is a person shown on the leadership pages.
type Leader struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Title   string      `json:"title"`
	Bio     string      `json:"bio"`
	Photo   string      `json:"photo,omitempty"`
	Group   LeaderGroup `json:"group"`
	PayamID string      `json:"payamId,omitempty"`
}

// Initials returns the upper-case first letters of every word of the name.
func (l Leader) Initials() string {
	var out []rune

	inWord := false

	for _, r := range l.Name {
		switch {
		case r == ' ':
			inWord = false
		case !inWord:
			inWord = true

			if r != '.' {
				out = append(out, r)
			}
		}
	}

	return string(out)
}

// Article is a news item.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"content"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []string  `json:"tags"`
}

// Event is a scheduled community event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate,omitzero"`
	Location    string    `json:"location"`
	CoverImage  string    `json:"coverImage,omitempty"`
	RSVPEnabled bool      `json:"rsvpEnabled"`
}

// Donation is a recorded contribution.
type Donation struct {
	ID        string    `json:"id"`
	DonorName string    `json:"donorName,omitempty"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	PayamID   string    `json:"payamId,omitempty"`
	Message   string    `json:"message,omitempty"`
	IsPublic  bool      `json:"isPublic"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pledge is a promised contribution.
type Pledge struct {
	ID        string       `json:"id"`
	DonorName string       `json:"donorName,omitempty"`
	Amount    int64        `json:"amount"`
	PayamID   string       `json:"payamId,omitempty"`
	Message   string       `json:"message,omitempty"`
	Status    PledgeStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Media is an entry of the media library.
type Media struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Type        MediaType `json:"type"`
	PayamID     string    `json:"payamId,omitempty"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Data is a complete set of collections.
type Data struct {
	Payams     []Payam
	Activities []Activity
	Leaders    []Leader
	News       []Article
	Events     []Event
	Donations  []Donation
	Pledges    []Pledge
	Media      []Media
}
