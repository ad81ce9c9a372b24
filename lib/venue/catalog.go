// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package venue

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Source abstracts venue data access for the UI. Implementations range
// from the in-memory mock catalog to whatever a real deployment would
// plug in; the UI code is identical regardless of backend.
//
// Venues returns the full ordered collection and is synchronous: the
// collection is supplied at mount and immutable for the UI's lifetime.
// Details and RequestBooking are the asynchronous collaborators — they
// may take arbitrarily long and may fail with a human-readable error.
type Source interface {
	// Venues returns the ordered venue collection.
	Venues() []Venue

	// Get returns a single venue by ID.
	Get(id int) (Venue, bool)

	// Search returns venues matching the query, preserving catalog
	// order. Blocking; callers run it from a tea.Cmd.
	Search(ctx context.Context, query Query) ([]Venue, error)

	// Details fetches the extended record for a venue. Blocking, with
	// induced latency in the mock implementation. The contract makes
	// no timing guarantee.
	Details(ctx context.Context, id int) (Details, error)

	// RequestBooking submits a mock booking request. The returned
	// confirmation is always pending host approval.
	RequestBooking(ctx context.Context, request BookingRequest) (BookingConfirmation, error)
}

// Mock fetch latency bounds. Real deployments replace the catalog, not
// these numbers; they exist so loading states are visible and the
// stale-response guard is exercised under realistic timing.
const (
	mockLatencyMin = 600 * time.Millisecond
	mockLatencyMax = 800 * time.Millisecond
)

// Catalog is the in-memory mock venue source. Safe for concurrent use:
// detail fetches run on bubbletea's command goroutines.
type Catalog struct {
	mutex    sync.RWMutex
	venues   []Venue
	details  map[int]Details
	bookings []BookingRequest

	// latency overrides the mock latency range when non-negative.
	// Tests set it to zero for determinism.
	latency time.Duration

	// random has its own lock: Int63n mutates the generator, and sleep
	// runs under the catalog's read lock, which admits concurrent
	// callers.
	randomMutex sync.Mutex
	random      *rand.Rand
}

// NewCatalog creates a Catalog over the given venues and details.
func NewCatalog(venues []Venue, details []Details) *Catalog {
	detailsByID := make(map[int]Details, len(details))
	for _, detail := range details {
		detailsByID[detail.VenueID] = detail
	}
	return &Catalog{
		venues:  venues,
		details: detailsByID,
		latency: -1,
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetLatency fixes the induced fetch latency. Used by tests (zero) and
// the --latency flag. A negative value restores the default jitter.
func (catalog *Catalog) SetLatency(latency time.Duration) {
	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()
	catalog.latency = latency
}

// Venues returns the ordered venue collection.
func (catalog *Catalog) Venues() []Venue {
	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()
	result := make([]Venue, len(catalog.venues))
	copy(result, catalog.venues)
	return result
}

// Get returns a single venue by ID.
func (catalog *Catalog) Get(id int) (Venue, bool) {
	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()
	for _, candidate := range catalog.venues {
		if candidate.ID == id {
			return candidate, true
		}
	}
	return Venue{}, false
}

// Search filters the catalog by the query's constrained fields,
// preserving catalog order. Region matching is case-insensitive
// substring, the same law the location autocomplete applies.
func (catalog *Catalog) Search(ctx context.Context, query Query) ([]Venue, error) {
	if err := catalog.sleep(ctx); err != nil {
		return nil, err
	}

	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()

	var result []Venue
	for _, candidate := range catalog.venues {
		if query.Category != "" && candidate.Category != query.Category {
			continue
		}
		if query.Region != "" &&
			!strings.Contains(strings.ToLower(candidate.Region), strings.ToLower(query.Region)) {
			continue
		}
		if query.Guests > 0 && candidate.Capacity < query.Guests {
			continue
		}
		result = append(result, candidate)
	}
	return result, nil
}

// Details fetches the extended record for a venue after the induced
// latency. Unknown IDs fail with a human-readable message.
func (catalog *Catalog) Details(ctx context.Context, id int) (Details, error) {
	if err := catalog.sleep(ctx); err != nil {
		return Details{}, err
	}

	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()
	detail, exists := catalog.details[id]
	if !exists {
		return Details{}, fmt.Errorf("no details available for venue %d", id)
	}
	return detail, nil
}

// RequestBooking records a mock booking request and returns a pending
// confirmation. Booked-out venues reject the request.
func (catalog *Catalog) RequestBooking(ctx context.Context, request BookingRequest) (BookingConfirmation, error) {
	if err := catalog.sleep(ctx); err != nil {
		return BookingConfirmation{}, err
	}

	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()

	var target *Venue
	for index := range catalog.venues {
		if catalog.venues[index].ID == request.VenueID {
			target = &catalog.venues[index]
			break
		}
	}
	if target == nil {
		return BookingConfirmation{}, fmt.Errorf("unknown venue %d", request.VenueID)
	}
	if target.Availability == "booked" {
		return BookingConfirmation{}, fmt.Errorf("%s is fully booked for the requested dates", target.Name)
	}

	catalog.bookings = append(catalog.bookings, request)
	return BookingConfirmation{
		Reference: fmt.Sprintf("bk-%04d", len(catalog.bookings)),
		Status:    "pending",
	}, nil
}

// Bookings returns the recorded booking requests. Test hook.
func (catalog *Catalog) Bookings() []BookingRequest {
	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()
	result := make([]BookingRequest, len(catalog.bookings))
	copy(result, catalog.bookings)
	return result
}

// sleep blocks for the induced latency or until the context is
// cancelled.
func (catalog *Catalog) sleep(ctx context.Context) error {
	catalog.mutex.RLock()
	latency := catalog.latency
	catalog.mutex.RUnlock()
	if latency < 0 {
		catalog.randomMutex.Lock()
		jitter := catalog.random.Int63n(int64(mockLatencyMax - mockLatencyMin))
		catalog.randomMutex.Unlock()
		latency = mockLatencyMin + time.Duration(jitter)
	}

	if latency == 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(latency):
		return nil
	}
}

// catalogFile is the YAML document shape for a venue data file.
type catalogFile struct {
	Venues  []Venue   `yaml:"venues"`
	Details []Details `yaml:"details"`
}

// LoadFile reads a YAML catalog file and builds a Catalog from it.
// Venue IDs must be unique; details referencing unknown venues are an
// error so mock data stays consistent with what the UI can display.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	seen := make(map[int]bool, len(file.Venues))
	for _, candidate := range file.Venues {
		if seen[candidate.ID] {
			return nil, fmt.Errorf("catalog %s: duplicate venue id %d", path, candidate.ID)
		}
		seen[candidate.ID] = true
	}
	for _, detail := range file.Details {
		if !seen[detail.VenueID] {
			return nil, fmt.Errorf("catalog %s: details for unknown venue %d", path, detail.VenueID)
		}
	}

	// Stable order: catalog files are hand-edited mock data, so make
	// display order independent of map iteration anywhere downstream.
	sort.SliceStable(file.Venues, func(a, b int) bool {
		return file.Venues[a].ID < file.Venues[b].ID
	})

	return NewCatalog(file.Venues, file.Details), nil
}
