package content

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no item matches the requested id or slug.
	ErrNotFound = errors.New("content not found")
	// ErrNegativeAmount is returned when a fundraising amount is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrEmptyTitle is returned when a news item has no title.
	ErrEmptyTitle = errors.New("title cannot be empty")
	// ErrEmptySlug is returned when a title does not produce a usable slug.
	ErrEmptySlug = errors.New("title does not produce a slug")
)

// Store holds the collections in memory. It is safe for concurrent use.
// Accessors return copies; mutations are not persisted.
type Store struct {
	mu   sync.RWMutex
	data Data
	now  func() time.Time
}

// NewStore creates a store over data.
func NewStore(data Data) *Store {
	return &Store{data: data, now: time.Now}
}

// NewCanonicalStore creates a store over the canonical collections.
func NewCanonicalStore() *Store {
	return NewStore(Canonical())
}

// Payams returns all payams in display order.
func (s *Store) Payams() []Payam {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Payams)
}

// PayamByID returns the payam with the given id.
func (s *Store) PayamByID(id string) (Payam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.data.Payams, func(p Payam) bool { return p.ID == id })
	if i < 0 {
		return Payam{}, ErrNotFound
	}

	return s.data.Payams[i], nil
}

// PayamBySlug returns the payam with the given slug.
func (s *Store) PayamBySlug(slug string) (Payam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.data.Payams, func(p Payam) bool { return p.Slug == slug })
	if i < 0 {
		return Payam{}, ErrNotFound
	}

	return s.data.Payams[i], nil
}

// Activities returns all activities.
func (s *Store) Activities() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Activities)
}

// Leaders returns all leaders.
func (s *Store) Leaders() []Leader {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Leaders)
}

// News returns all news items in publication order.
func (s *Store) News() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.News)
}

// NewsBySlug returns the news item with the given slug.
func (s *Store) NewsBySlug(slug string) (Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.data.News, func(a Article) bool { return a.Slug == slug })
	if i < 0 {
		return Article{}, ErrNotFound
	}

	return s.data.News[i], nil
}

// LatestNews returns up to n news items, newest first.
func (s *Store) LatestNews(n int) []Article {
	out := s.News()
	slices.SortStableFunc(out, func(a, b Article) int { return b.PublishedAt.Compare(a.PublishedAt) })

	if n >= 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

// FilterNews returns the news items whose title or excerpt contains query,
// case-insensitively, and that carry tag when tag is not empty.
func (s *Store) FilterNews(query, tag string) []Article {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.News, func(a Article) bool {
		if tag != "" && !slices.Contains(a.Tags, tag) {
			return false
		}

		return q == "" ||
			strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Excerpt), q)
	})
}

// NewsTags returns every tag used by a news item in first-use order.
func (s *Store) NewsTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string

	for _, a := range s.data.News {
		for _, t := range a.Tags {
			if !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}

	return out
}

// Events returns all events.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Events)
}

// EventBySlug returns the event with the given slug.
func (s *Store) EventBySlug(slug string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.data.Events, func(e Event) bool { return e.Slug == slug })
	if i < 0 {
		return Event{}, ErrNotFound
	}

	return s.data.Events[i], nil
}

// UpcomingEvents returns the events starting at or after now.
func (s *Store) UpcomingEvents(now time.Time) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Events, func(e Event) bool { return !e.StartDate.Before(now) })
}

// PastEvents returns the events that started before now.
func (s *Store) PastEvents(now time.Time) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Events, func(e Event) bool { return e.StartDate.Before(now) })
}

// ActivitiesByStatus returns the activities in status st.
func (s *Store) ActivitiesByStatus(st ActivityStatus) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Activities, func(a Activity) bool { return a.Status == st })
}

// Donations returns all donations.
func (s *Store) Donations() []Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Donations)
}

// PublicDonations returns the donations whose donors agreed to be listed.
func (s *Store) PublicDonations() []Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Donations, func(d Donation) bool { return d.IsPublic })
}

// VerifiedDonations returns the verified donations earmarked for a payam.
func (s *Store) VerifiedDonations(payamID string) []Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Donations, func(d Donation) bool { return d.PayamID == payamID && d.Verified })
}

// Pledges returns all pledges.
func (s *Store) Pledges() []Pledge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Pledges)
}

// Media returns the whole media library.
func (s *Store) Media() []Media {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Media)
}

// TotalRaised sums the verified donations.
func (s *Store) TotalRaised() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int64

	for _, d := range s.data.Donations {
		if d.Verified {
			sum += d.Amount
		}
	}

	return sum
}

// TotalRequested sums the requested amounts of all payams.
func (s *Store) TotalRequested() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int64
	for _, p := range s.data.Payams {
		sum += p.RequestedAmount
	}

	return sum
}

// ProgressPercentage is TotalRaised relative to TotalRequested, rounded to a whole percent.
func (s *Store) ProgressPercentage() int {
	return Percent(s.TotalRaised(), s.TotalRequested())
}

// PayamProgress is the verified donations of a payam relative to its requested
// amount, rounded to a whole percent. Unknown payams report 0.
func (s *Store) PayamProgress(payamID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.data.Payams, func(p Payam) bool { return p.ID == payamID })
	if i < 0 {
		return 0
	}

	var raised int64

	for _, d := range s.data.Donations {
		if d.PayamID == payamID && d.Verified {
			raised += d.Amount
		}
	}

	return Percent(raised, s.data.Payams[i].RequestedAmount)
}

// PayamActivities returns the activities of a payam.
func (s *Store) PayamActivities(payamID string) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Activities, func(a Activity) bool { return a.PayamID == payamID })
}

// PayamLeadership returns the coordinators assigned to a payam.
func (s *Store) PayamLeadership(payamID string) []Leader {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Leaders, func(l Leader) bool { return l.PayamID == payamID })
}

// AssociationLeadership returns the association officers.
func (s *Store) AssociationLeadership() []Leader {
	return s.leadersIn(GroupAssociation)
}

// ResettlementLeadership returns the resettlement coordinators.
func (s *Store) ResettlementLeadership() []Leader {
	return s.leadersIn(GroupResettlement)
}

func (s *Store) leadersIn(g LeaderGroup) []Leader {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Leaders, func(l Leader) bool { return l.Group == g })
}

// MediaByPayam returns the media items tied to a payam.
func (s *Store) MediaByPayam(payamID string) []Media {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Media, func(m Media) bool { return m.PayamID == payamID })
}

// MediaByType returns the media items of the given type.
func (s *Store) MediaByType(t MediaType) []Media {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter(s.data.Media, func(m Media) bool { return m.Type == t })
}

// PayamFunding is one row of the fundraising overview.
type PayamFunding struct {
	Payam    Payam
	Progress int
}

// FundraisingSummary is the admin roll-up of the payam fundraising figures.
// Unlike TotalRaised it uses the raised amounts maintained by administrators.
type FundraisingSummary struct {
	Payams    []PayamFunding
	Raised    int64
	Requested int64
	Progress  int
}

// Fundraising builds the fundraising overview.
func (s *Store) Fundraising() FundraisingSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := FundraisingSummary{Payams: make([]PayamFunding, 0, len(s.data.Payams))}

	for _, p := range s.data.Payams {
		out.Payams = append(out.Payams, PayamFunding{Payam: p, Progress: Percent(p.RaisedAmount, p.RequestedAmount)})
		out.Raised += p.RaisedAmount
		out.Requested += p.RequestedAmount
	}

	out.Progress = Percent(out.Raised, out.Requested)

	return out
}

// UpdatePayamFunding replaces the fundraising figures and description of a payam.
func (s *Store) UpdatePayamFunding(id string, raised, requested int64, description string) (Payam, error) {
	if raised < 0 || requested < 0 {
		return Payam{}, ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Payams, func(p Payam) bool { return p.ID == id })
	if i < 0 {
		return Payam{}, ErrNotFound
	}

	p := &s.data.Payams[i]
	p.RaisedAmount = raised
	p.RequestedAmount = requested
	p.Description = strings.TrimSpace(description)

	return *p, nil
}

// NewArticle is the input of AddNews.
type NewArticle struct {
	Title      string
	Excerpt    string
	Body       string
	CoverImage string
	Tags       []string
}

// AddNews publishes a news item. The slug is derived from the title and made
// unique by appending a counter.
func (s *Store) AddNews(in NewArticle) (Article, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Article{}, ErrEmptyTitle
	}

	base := Slugify(title)
	if base == "" {
		return Article{}, ErrEmptySlug
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slug := base
	for n := 2; s.hasNewsSlug(slug); n++ {
		slug = base + "-" + strconv.Itoa(n)
	}

	a := Article{
		ID:          uuid.NewString(),
		Title:       title,
		Slug:        slug,
		Excerpt:     strings.TrimSpace(in.Excerpt),
		Body:        strings.TrimSpace(in.Body),
		CoverImage:  in.CoverImage,
		PublishedAt: s.now().UTC().Truncate(24 * time.Hour),
		Tags:        normalizeTags(in.Tags),
	}

	s.data.News = append(s.data.News, a)

	return a, nil
}

func (s *Store) hasNewsSlug(slug string) bool {
	return slices.ContainsFunc(s.data.News, func(a Article) bool { return a.Slug == slug })
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))

	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}

	return out
}

// Percent returns part relative to total, rounded half up to a whole percent.
// A non-positive total yields 0.
func Percent(part, total int64) int {
	if total <= 0 {
		return 0
	}

	return int(math.Floor(float64(part)*100/float64(total) + 0.5))
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))

	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}
