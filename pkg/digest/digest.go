// Package digest builds and publishes the periodic VIP event digest.
package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/publishedpost"
	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/pkg/publish"
)

// Destination is the digest's outbound channel name in the publish log.
const Destination = "vip_telegram"

// Run statuses.
const (
	StatusPublished        = "published"
	StatusSkippedDuplicate = "skipped_duplicate"
)

var topicLabels = map[string]string{
	models.TopicMacroEcon:       "Macro Econ",
	models.TopicCentralBanks:    "Central Banks",
	models.TopicEquities:        "Equities",
	models.TopicCredit:          "Credit",
	models.TopicRates:           "Rates",
	models.TopicFX:              "FX",
	models.TopicCommodities:     "Commodities",
	models.TopicCrypto:          "Crypto",
	models.TopicWarSecurity:     "War / Security",
	models.TopicGeopolitics:     "Geopolitics",
	models.TopicCompanySpecific: "Company Specific",
	models.TopicOther:           "Other",
}

func topicLabel(topic *string) string {
	if topic == nil || *topic == "" {
		return "Other"
	}
	if label, ok := topicLabels[*topic]; ok {
		return label
	}
	return *topic
}

// Result reports what one digest run did.
type Result struct {
	Status          string `json:"status"`
	ContentHash     string `json:"content_hash"`
	PublishedPostID *int   `json:"published_post_id,omitempty"`
	EventIDs        []int  `json:"event_ids"`
}

// Service assembles and publishes digests.
type Service struct {
	client *ent.Client
	sender publish.Sender
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a digest service.
func NewService(client *ent.Client, sender publish.Sender) *Service {
	return &Service{
		client: client,
		sender: sender,
		logger: slog.Default().With("component", "digest"),
		now:    time.Now,
	}
}

// EventsForDigest returns events touched or occurring within the window,
// most recently updated first.
func (s *Service) EventsForDigest(ctx context.Context, windowHours int) ([]*ent.Event, error) {
	cutoff := s.now().UTC().Add(-time.Duration(windowHours) * time.Hour)
	rows, err := s.client.Event.Query().
		Where(
			event.Or(
				event.LastUpdatedAtGTE(cutoff),
				event.And(event.EventTimeNotNil(), event.EventTimeGTE(cutoff)),
			),
		).
		Order(ent.Desc(event.FieldLastUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query digest events: %w", err)
	}
	return rows, nil
}

// Build renders the digest text: a counts header, events grouped by topic,
// and an advice disclaimer.
func Build(events []*ent.Event, windowHours int, generatedAt time.Time) string {
	byTopic := map[string][]*ent.Event{}
	for _, e := range events {
		label := topicLabel(e.Topic)
		byTopic[label] = append(byTopic[label], e)
	}

	labels := make([]string, 0, len(byTopic))
	for label := range byTopic {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	fmt.Fprintf(&b, "Civicquant Digest — last %dh (generated %s)\n\n",
		windowHours, generatedAt.UTC().Format("2006-01-02 15:04 UTC"))

	if len(labels) == 0 {
		b.WriteString("Counts: 0\n\n")
	} else {
		counts := make([]string, 0, len(labels))
		for _, label := range labels {
			counts = append(counts, fmt.Sprintf("%s: %d", label, len(byTopic[label])))
		}
		fmt.Fprintf(&b, "Counts: %s\n\n", strings.Join(counts, ", "))
	}

	for _, label := range labels {
		fmt.Fprintf(&b, "== %s ==\n", label)
		for _, e := range byTopic[label] {
			summary := "(no summary)"
			if e.Summary != nil && strings.TrimSpace(*e.Summary) != "" {
				summary = strings.TrimSpace(*e.Summary)
			}
			impact := "n/a"
			if e.ImpactScore != nil {
				impact = strconv.FormatFloat(*e.ImpactScore, 'g', -1, 64)
			}
			fmt.Fprintf(&b, "- %s (impact=%s, corroboration=unknown)\n", summary, impact)
		}
		b.WriteString("\n")
	}

	b.WriteString("Note: informational only; no investment advice. Uncorroborated items may be included and are labeled accordingly.")
	return strings.TrimSpace(b.String()) + "\n"
}

// Run builds the digest for the window, publishes it unless the identical
// content already went to the destination within the window, and logs the
// post for future dedup.
func (s *Service) Run(ctx context.Context, windowHours int) (*Result, error) {
	events, err := s.EventsForDigest(ctx, windowHours)
	if err != nil {
		return nil, err
	}
	text := Build(events, windowHours, s.now())

	sum := sha256.Sum256([]byte(text))
	contentHash := hex.EncodeToString(sum[:])

	eventIDs := make([]int, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	dup, err := s.hasRecentDuplicate(ctx, contentHash, windowHours)
	if err != nil {
		return nil, err
	}
	if dup {
		s.logger.Info("digest_skip_duplicate", "destination", Destination, "hash", contentHash)
		return &Result{Status: StatusSkippedDuplicate, ContentHash: contentHash, EventIDs: eventIDs}, nil
	}

	if err := s.sender.Send(ctx, text); err != nil {
		return nil, err
	}

	post, err := s.client.PublishedPost.Create().
		SetDestination(Destination).
		SetPublishedAt(s.now().UTC()).
		SetContent(text).
		SetContentHash(contentHash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record published post: %w", err)
	}

	s.logger.Info("digest_published",
		"destination", Destination,
		"hash", contentHash,
		"published_post_id", post.ID)
	return &Result{
		Status:          StatusPublished,
		ContentHash:     contentHash,
		PublishedPostID: &post.ID,
		EventIDs:        eventIDs,
	}, nil
}

func (s *Service) hasRecentDuplicate(ctx context.Context, contentHash string, windowHours int) (bool, error) {
	cutoff := s.now().UTC().Add(-time.Duration(windowHours) * time.Hour)
	exists, err := s.client.PublishedPost.Query().
		Where(
			publishedpost.Destination(Destination),
			publishedpost.ContentHash(contentHash),
			publishedpost.PublishedAtGTE(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query published posts: %w", err)
	}
	return exists, nil
}
